package shared

import "errors"

// ValidationError returned when request payload does not satisfy required fields
type ValidationError struct {
	Message string
}

// NewValidationError constructor
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError returned when the requested record does not exist or the identifier is malformed
type NotFoundError struct {
	Message string
}

// NewNotFoundError constructor
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// StoreError wrap any failure from the document store (connectivity, duplicate key, schema rejection)
type StoreError struct {
	Err error
}

// NewStoreError constructor
func NewStoreError(err error) *StoreError {
	return &StoreError{Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store error"
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidationError check err chain
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFoundError check err chain
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsStoreError check err chain
func IsStoreError(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
