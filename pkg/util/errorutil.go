package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/account-service/internal/domain"
)

// DomainError standardizes application errors at the HTTP boundary.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
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
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

// NewInternalError wraps an infrastructure failure. The cause is kept
// for server-side logging but never reaches the response body.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError classifies an error from the auth core and maps it to a
// transport response. Credential failures stay deliberately vague;
// infrastructure failures become an opaque 500 carrying the cause for
// the logs only.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return NewDomainError("EMAIL_TAKEN", "email already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return NewDomainError("INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrAccountInactive):
		return NewDomainError("ACCOUNT_INACTIVE", "account is inactive", http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidToken):
		return NewDomainError("INVALID_TOKEN", "invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUserNotFound):
		return NewDomainError("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	default:
		return &DomainError{
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}
}
