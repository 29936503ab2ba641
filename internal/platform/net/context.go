// Package net provides request context helpers and the transport error envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyUser ctxKey = "user_email"

// WithRequest sets the chi request id so chimw.GetReqID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithUser annotates context with the signed-in user's email
func WithUser(ctx context.Context, email string) context.Context {
	if email == "" {
		return ctx
	}
	return context.WithValue(ctx, keyUser, email)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// UserEmail returns the signed-in user's email if present
func UserEmail(ctx context.Context) string {
	v, _ := ctx.Value(keyUser).(string)
	return v
}
