// utils/errors.go
package utils

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindInternal
)

const internalMessage = "Internal Server Error"

var (
	ErrUserIDNotFound = errors.New("authentication required: user ID not found")
	ErrUnauthorized   = errors.New("unauthorized access")
)

// AppError carries the client-facing message and the kind that picks the HTTP status.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func InternalError(err error) error {
	return &AppError{Kind: KindInternal, Message: internalMessage, Err: err}
}

// KindOf reports the kind of err; anything that isn't an AppError is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to put in a response body.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return internalMessage
}
