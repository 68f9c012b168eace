// Package apperr is the error taxonomy shared by services and handlers.
// Every kind maps to one HTTP status and a stable machine-readable code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindAuth:
		return "auth_error"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream_error"
	default:
		return "internal_error"
	}
}

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind Kind
	Msg  string
	// UpstreamStatus is the status code reported by an external provider, if any.
	UpstreamStatus int
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Status is the HTTP status the error should be reported with.
func (e *Error) Status() int {
	if e.Kind == KindUpstream && e.UpstreamStatus >= 400 && e.UpstreamStatus <= 599 {
		return e.UpstreamStatus
	}
	return e.Kind.Status()
}

func Validation(msg string, err error) *Error { return &Error{Kind: KindValidation, Msg: msg, Err: err} }
func Auth(msg string) *Error                  { return &Error{Kind: KindAuth, Msg: msg} }
func Forbidden(msg string) *Error             { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error              { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string, err error) *Error   { return &Error{Kind: KindConflict, Msg: msg, Err: err} }
func Internal(msg string, err error) *Error   { return &Error{Kind: KindInternal, Msg: msg, Err: err} }

func Upstream(msg string, status int, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, UpstreamStatus: status, Err: err}
}

// As extracts an *Error from err; plain errors are reported as internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal error", err)
}

func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
