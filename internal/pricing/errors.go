package pricing

import (
	"errors"
	"fmt"
)

// Error kinds returned by Resolve. Use errors.Is to test for them.
var (
	ErrInvalidQuantity          = errors.New("quantity must be between 1 and 999")
	ErrMissingVariant           = errors.New("a variant must be chosen")
	ErrUnknownVariant           = errors.New("unknown variant")
	ErrMissingRequiredModifier  = errors.New("required modifier group has no selection")
	ErrInvalidModifierSelection = errors.New("invalid modifier selection")
	ErrNegativeTaxRate          = errors.New("tax rate cannot be negative")
)

// Field names reported with selection errors.
const (
	FieldQuantity = "quantity"
	FieldVariant  = "variant"
)

// SelectionError is a rejected Selection. Field names the offending input:
// "quantity", "variant", or the modifier group name.
type SelectionError struct {
	Kind   error
	Field  string
	Detail string
}

func (e *SelectionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Kind, e.Detail)
}

func (e *SelectionError) Unwrap() error { return e.Kind }

// RejectQuantity reports a line quantity outside 1..MaxQuantity.
func RejectQuantity(quantity int) *SelectionError {
	return reject(ErrInvalidQuantity, FieldQuantity, "got %d", quantity)
}

func reject(kind error, field, format string, args ...any) *SelectionError {
	return &SelectionError{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)}
}
