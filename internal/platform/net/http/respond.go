// Package http provides the router seam and JSON response helpers
// success bodies are written raw; failures use the pnet error envelope
package http

import (
	stdhttp "net/http"

	"cubewars/internal/platform/logger"
	pnet "cubewars/internal/platform/net"

	"github.com/goccy/go-json"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("write json body")
	}
}

// RespondError maps a project error into the envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status  int
	Body    any
	Header  stdhttp.Header
	Cookies []*stdhttp.Cookie
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	// cookies go out on failures too, e.g. clearing a revoked session
	for _, c := range resp.Cookies {
		stdhttp.SetCookie(w, c)
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Status returns a response with an explicit status and raw body
func Status(status int, body any) Response { return Response{Status: status, Body: body} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// WithCookies returns a copy of resp that also sets cookies
func (resp Response) WithCookies(c ...*stdhttp.Cookie) Response {
	resp.Cookies = append(append([]*stdhttp.Cookie(nil), resp.Cookies...), c...)
	return resp
}
