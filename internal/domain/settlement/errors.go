package settlement

import (
	"errors"
	"fmt"
	"strings"

	"claims_settlement/internal/domain/entities"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidClaim = errors.New("invalid claim")
	ErrOfferExpired = errors.New("offer expired")
	ErrCorruptOffer = errors.New("offer violates lifecycle invariants")
)

// FieldError describes one input field that failed a rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a rejected input. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors extracts the field list from err, or nil when err is not a validation error.
func FieldErrors(err error) []FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

func newValidationError(fields ...FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func invalidState(op string, status entities.OfferStatus) error {
	return fmt.Errorf("%w: cannot %s offer in status %s", ErrInvalidState, op, status)
}
