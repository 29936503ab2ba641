// Package domain holds DTOs for the auth http and service contracts
package domain

// LoginInput is the Google Identity Services callback body
type LoginInput struct {
	Credential string `json:"credential" example:"eyJhbGciOiJSUzI1NiIs..."`
}

// User is the public profile carried in the session
type User struct {
	Email   string `json:"email" example:"analyst@example.com"`
	Name    string `json:"name" example:"Ada Analyst"`
	Picture string `json:"picture" example:"https://lh3.googleusercontent.com/a/photo"`
}

// Identity is a verified Google account
type Identity struct {
	User
	Subject string
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	User User `json:"user"`
}

// LogoutResponse is returned by logout
type LogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// CheckResponse reports whether the session cookie is still good
type CheckResponse struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	User          *User  `json:"user,omitempty"`
	Error         string `json:"error,omitempty" example:"Access revoked"`
}
