// internal/services/errors.go
package services

import (
	"errors"

	"github.com/burim/garant-backend/internal/repository"
)

// ErrorKind classifies a service failure for the API surface. Handlers map
// kinds to HTTP statuses; the Code doubles as an i18n message key.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindForbidden
	KindConflict
	KindPaymentRequired
	KindValidation
	KindInternal
)

type Error struct {
	Kind    ErrorKind   `json:"-"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NotFoundError(code, message string) *Error {
	return newError(KindNotFound, code, message)
}

func ForbiddenError(code, message string) *Error {
	return newError(KindForbidden, code, message)
}

func ConflictError(code, message string) *Error {
	return newError(KindConflict, code, message)
}

func PaymentRequiredError(code, message string) *Error {
	return newError(KindPaymentRequired, code, message)
}

func ValidationError(code, message string, details interface{}) *Error {
	e := newError(KindValidation, code, message)
	e.Details = details
	return e
}

func InternalError(err error) *Error {
	return newError(KindInternal, "internal_error", err.Error())
}

// AsError unwraps a service error from any error value.
func AsError(err error) (*Error, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// wrapRepositoryError translates store sentinels for a given resource; other
// failures surface as internal errors.
func wrapRepositoryError(err error, notFoundCode, notFoundMessage string) *Error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NotFoundError(notFoundCode, notFoundMessage)
	case errors.Is(err, repository.ErrVersionConflict):
		return ConflictError("deal.stale", "the deal was modified concurrently, fetch it again and retry")
	case errors.Is(err, repository.ErrInsufficientQuantity):
		return ConflictError("product.out_of_stock", "not enough quantity left for this listing")
	default:
		return InternalError(err)
	}
}
