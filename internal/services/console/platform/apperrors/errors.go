// Package apperrors defines typed console failures and their HTTP mapping.
package apperrors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed console failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e Error) Unwrap() error { return e.Err }

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// FromAPI classifies a backend failure. A 404 from the backend becomes
// KindNotFound; every other failure is KindUnavailable.
func FromAPI(err error, key string) error {
	if err == nil {
		return nil
	}
	kind := KindUnavailable
	if api.StatusCode(err) == http.StatusNotFound {
		kind = KindNotFound
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: err.Error(), Err: err}
}

// Classify maps a backend failure from loading one record. Typed errors
// pass through unchanged; a backend 404 carries notFoundKey and any other
// failure carries key.
func Classify(err error, key, notFoundKey string) error {
	var appErr Error
	if errors.As(err, &appErr) {
		return err
	}
	mapped := FromAPI(err, key)
	if KindOf(mapped) == KindNotFound {
		return Error{Kind: KindNotFound, Key: strings.TrimSpace(notFoundKey), Message: err.Error(), Err: err}
	}
	return mapped
}

// KindOf returns the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !errors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
