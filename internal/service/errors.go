package service

import "fmt"

const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodeForbidden   = "forbidden"
	CodeUnavailable = "unavailable"
)

// DomainError is an error the caller can act on. Anything else is internal.
type DomainError struct {
	Code    string
	Message string
	Err     error
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

func validationError(format string, args ...any) error {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(format string, args ...any) error {
	return &DomainError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func forbiddenError(format string, args ...any) error {
	return &DomainError{Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

func unavailableError(message string, err error) error {
	return &DomainError{Code: CodeUnavailable, Message: message, Err: err}
}
