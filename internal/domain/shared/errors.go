package shared

import "errors"

// ErrorKind classifies a DomainError independently of its code
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindInvariant    ErrorKind = "invariant"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
)

// Error codes shared across aggregates
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDuplicateID      = "DUPLICATE_ID"
	CodeDuplicateSerial  = "DUPLICATE_SERIAL"
	CodeDuplicateEmail   = "DUPLICATE_EMAIL"
)

// FieldError is a single field-level validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind    `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so sentinel values work with errors.Is.
// Validation errors share one code and are told apart by message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	return e.Kind != KindValidation || e.Message == t.Message
}

// NewDomainError creates a new domain error of kind invariant
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Kind:    KindInvariant,
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

// NewConflictError creates a conflict error (duplicates, state-incompatible operations)
func NewConflictError(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

// NewUnauthorizedError creates an authentication error
func NewUnauthorizedError(code, message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Code: code, Message: message}
}

// NewForbiddenError creates an authorization error
func NewForbiddenError(code, message string) *DomainError {
	return &DomainError{Kind: KindForbidden, Code: code, Message: message}
}

// NewValidationError creates a validation error carrying per-field messages.
// The first detail's message becomes the error message.
func NewValidationError(details ...FieldError) *DomainError {
	msg := "Validation failed"
	if len(details) > 0 {
		msg = details[0].Message
	}
	return &DomainError{
		Kind:    KindValidation,
		Code:    CodeValidationFailed,
		Message: msg,
		Details: details,
	}
}

// NewFieldError is shorthand for a single-field validation error
func NewFieldError(field, message string) *DomainError {
	return NewValidationError(FieldError{Field: field, Message: message})
}

// ValidationErrors accumulates field errors before raising one DomainError
type ValidationErrors []FieldError

// Add records a field failure
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was recorded
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return NewValidationError(v...)
}

// KindOf returns the kind of a domain error, or "" for other errors
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found domain error
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is a conflict domain error
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsValidation reports whether err is a validation domain error
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsInvariant reports whether err is a domain invariant error
func IsInvariant(err error) bool { return KindOf(err) == KindInvariant }

// Common domain errors
var (
	ErrNotFound      = NewNotFoundError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewConflictError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = &DomainError{Kind: KindValidation, Code: "INVALID_INPUT", Message: "Invalid input provided"}
	ErrUnauthorized  = NewUnauthorizedError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden     = NewForbiddenError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
