package domain

import "time"

// Wishlist is a per-user saved-for-later set of menu item ids. Same lazy
// lifecycle as Cart, without quantities or pricing.
type Wishlist struct {
	UserID    string
	ItemIDs   []string
	UpdatedAt time.Time
}

func (w Wishlist) Contains(itemID string) bool {
	for _, id := range w.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
