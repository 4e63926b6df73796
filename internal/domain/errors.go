package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers product and order lookups by unknown id.
	ErrNotFound = errors.New("not found")
	// ErrNotEligible is returned when a review is submitted without a purchase.
	ErrNotEligible = errors.New("not eligible: purchase required before review")
)

// ValidationError reports a malformed or out-of-range input field.
// Operations that fail validation leave stored state untouched.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
