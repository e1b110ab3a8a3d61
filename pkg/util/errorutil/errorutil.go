package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
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
func NewDomainError(code, message string, status int, err error) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewValidationError(message string, err error) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, err)
}

// NewBadIdentifier reports an id the store cannot parse. It maps to 404 so a
// malformed id reads the same as an unknown one.
func NewBadIdentifier(id string, err error) error {
	return NewDomainError("BAD_IDENTIFIER", fmt.Sprintf("malformed identifier %q", id), http.StatusNotFound, err)
}

func NewNotFound(resource string, err error) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func NewConflict(message string, err error) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, err)
}

func NewInternalError(err error) error {
	return NewDomainError("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return NewDomainError("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, err)
}
