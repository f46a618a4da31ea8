package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/persona-api/internal/domain"
)

// ServiceError wraps a pipeline failure with the operation that produced it.
type ServiceError struct {
	// Operation is the endpoint operation that failed (e.g. "random_person").
	Operation string
	// Message is a human-readable description of the failure.
	Message string
	// Err is the underlying error; it wraps one of the domain sentinels.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. It returns nil for a nil err.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ErrorKind names the taxonomy entry err belongs to, for log fields.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, domain.ErrUpstreamContract):
		return "upstream_contract_violation"
	case errors.Is(err, domain.ErrEmptyResult):
		return "empty_result"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidBody):
		return "client_validation_failure"
	default:
		return "internal_unexpected"
	}
}
