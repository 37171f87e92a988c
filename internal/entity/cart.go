package domain

import "time"

// CartLine pairs a menu item with a quantity. Quantity is always >= 1; a
// line whose quantity drops to zero is removed rather than stored.
type CartLine struct {
	ItemID   string
	Quantity int
}

// Cart is the per-user in-progress selection. A user's cart exists lazily:
// reading an unknown user yields a valid zero-line cart.
type Cart struct {
	UserID    string
	Lines     []CartLine
	UpdatedAt time.Time
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Quantity returns the quantity for itemID, or zero when absent.
func (c Cart) Quantity(itemID string) int {
	for _, l := range c.Lines {
		if l.ItemID == itemID {
			return l.Quantity
		}
	}
	return 0
}
