package net

import (
	"net/http"

	perr "cubewars/internal/platform/errors"
)

// Wire is the error envelope every transport writes on failure
// success bodies are written raw, without an envelope
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error builds the status and envelope for err
// a nil err is a programming mistake and reads as an internal error
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		err = perr.Internalf(perr.MsgInternal)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}
