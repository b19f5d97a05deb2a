package service

import (
	"fmt"
)

// ServiceError wraps unexpected failures with the operation that produced
// them. Sentinel errors from the store and domain packages remain reachable
// through Unwrap.
type ServiceError struct {
	// Service names the service, e.g. "article".
	Service string
	// Operation is the operation that failed (e.g., "list_articles").
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. It returns nil when err is nil.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// nilDependency reports a missing constructor argument.
func nilDependency(service, name string) error {
	return &ServiceError{
		Service:   service,
		Operation: "create_service",
		Message:   name + " cannot be nil",
	}
}
