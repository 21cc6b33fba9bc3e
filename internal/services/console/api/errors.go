package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequestFailed matches every failure returned by Client, whatever its
// cause: transport, non-2xx status, or an undecodable body.
var ErrRequestFailed = errors.New("request failed")

// ErrUnexpectedEnvelope marks a body wrapped as {"statusCode", "body"}
// instead of the direct JSON payload the client expects.
var ErrUnexpectedEnvelope = errors.New("unexpected response envelope")

// Error is the single failure type surfaced by Client.
type Error struct {
	// Op names the client operation, e.g. "ListEmployees".
	Op string
	// Status is the HTTP status code, zero when no response arrived.
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("Request failed:")
	if e.Status != 0 {
		fmt.Fprintf(&b, " %d", e.Status)
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		b.WriteString(" ")
		b.WriteString(msg)
	} else if e.Err != nil {
		b.WriteString(" ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes ErrRequestFailed alongside the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
