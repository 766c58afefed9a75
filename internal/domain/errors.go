package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
	ErrNotFound        ErrorCode = "NOT_FOUND"
	ErrRateLimited     ErrorCode = "RATE_LIMITED"
	ErrAllModelsFailed ErrorCode = "ALL_MODELS_FAILED"
)

// AllModelsFailedMessage is returned to clients when the fallback chain is exhausted.
const AllModelsFailedMessage = "All model attempts failed to generate paragraph."

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewRateLimitedError() *DomainError {
	return NewError(ErrRateLimited, "Too many requests, slow down.", nil)
}

// NewAllModelsFailedError reports that every model in the chain was tried without success.
func NewAllModelsFailedError(attempted int) *DomainError {
	return NewError(ErrAllModelsFailed, AllModelsFailedMessage,
		fmt.Errorf("%d models attempted", attempted))
}
