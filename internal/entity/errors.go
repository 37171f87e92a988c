package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPhone    = errors.New("phone must contain exactly 10 digits")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrNoopTransition  = errors.New("order is already in the requested status")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrConflict reports a lost race on a read-then-conditionally-write,
	// e.g. a status update applied against a stale stored status.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrCheckoutInProgress reports that another checkout currently holds
	// the per-user lock.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// MissingFieldError names the blank customer field that failed checkout
// validation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// UnknownItemError reports a cart line whose item id no longer resolves in
// the catalog. At checkout this aborts the whole order; dropping the line
// silently would desynchronize the displayed cart from the charged total.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown menu item %q", e.ItemID)
}

// InvalidTransitionError reports a status move the lifecycle machine forbids,
// such as leaving a terminal state or moving backward.
type InvalidTransitionError struct {
	From, To Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}
