package services

import "errors"

// Error kinds shared across services. Call sites wrap them with context via
// fmt.Errorf("%w: ...") and handlers map them to HTTP status codes with
// errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrNotVisible   = errors.New("not visible")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
