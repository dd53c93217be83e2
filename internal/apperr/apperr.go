package apperr

import (
	"errors"
	"net/http"
)

// Error is the service-wide error type that handlers translate into a
// JSON body. Fields are merged into the body next to the "error" key
// (e.g. available/requested on insufficient-inventory failures).
type Error struct {
	Status  int
	Message string
	Fields  map[string]any
}

func (e *Error) Error() string { return e.Message }

// Validation: missing or malformed caller input.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// ValidationWith attaches supplementary fields to a validation failure.
func ValidationWith(msg string, fields map[string]any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg, Fields: fields}
}

// NotFound: a referenced entity does not exist.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Conflict: a business-rule violation (same-warehouse transfer,
// insufficient inventory). Surfaced as 400, not 409: the caller sent a
// request the current state cannot satisfy.
func Conflict(msg string, fields map[string]any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg, Fields: fields}
}

// Store: an underlying persistence failure.
func Store(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: err.Error()}
}

// From returns err as *Error, wrapping anything untyped as a store fault.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Store(err)
}
