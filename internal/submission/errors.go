package submission

import "fmt"

// ErrorCode classifies why a payload was rejected.
type ErrorCode string

const (
	MissingField  ErrorCode = "MissingField"
	InvalidFormat ErrorCode = "InvalidFormat"
	TooShort      ErrorCode = "TooShort"
	TooLong       ErrorCode = "TooLong"
)

// ValidationError names the first rule a payload violated. Validation is
// fail-fast: no rule past the first violation is evaluated.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func missing(field string) *ValidationError {
	return &ValidationError{Code: MissingField, Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Code: InvalidFormat, Field: field, Message: msg}
}

// PersistenceError wraps a store failure, distinct from a validation failure.
// The cause is for operator logs only and must not reach the client verbatim.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: persistence failure: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
