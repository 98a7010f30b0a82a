package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(message string) error {
	return NewDomainError("NOT_FOUND", message, http.StatusNotFound, nil)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewDuplicateEmail reports a registration conflict. The original API
// contract surfaces this as 400.
func NewDuplicateEmail() error {
	return NewDomainError("DUPLICATE_EMAIL", "email already in use", http.StatusBadRequest, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError. Sentinel domain
// errors map to their contract statuses; anything unknown becomes an
// opaque 500 so storage detail never reaches the client.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return NewDuplicateEmail().(*DomainError)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return NewUnauthorized(domain.ErrInvalidCredentials.Error()).(*DomainError)
	case errors.Is(err, domain.ErrTicketNotOpen):
		return NewNotFound(domain.ErrTicketNotOpen.Error()).(*DomainError)
	case errors.Is(err, domain.ErrUserNotFound):
		return NewNotFound(domain.ErrUserNotFound.Error()).(*DomainError)
	case errors.Is(err, pgx.ErrNoRows):
		return NewNotFound("resource not found").(*DomainError)
	}
	return NewInternalError(err).(*DomainError)
}

func MapError(err error) error {
	return ToDomainError(err)
}
