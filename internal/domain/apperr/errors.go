package apperr

import "fmt"

// ValidationError is a business-rule or input failure scoped to one field.
// Nothing is persisted once one is raised.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an unknown application/guarantor/reference lookup.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// PermissionError reports the wrong actor attempting a transition.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func Permission(message string) *PermissionError {
	return &PermissionError{Message: message}
}

// ConflictError reports a capacity check lost under lock. Retryable by the
// caller; the usual message is "insufficient capacity, savings changed".
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
