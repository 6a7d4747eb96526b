package services

import (
	"errors"
	"fmt"

	"pizzeria/internal/repositories"
)

// ErrNotFound is returned when a cart item, order or catalog entity does
// not exist or is not owned by the caller.
var ErrNotFound = repositories.ErrNotFound

// ErrEmptyCart is returned when checkout is attempted with no items in
// the cart. Callers should send the customer back to the menu.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports malformed or out-of-range input at a service
// surface. It aborts the operation with no state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
