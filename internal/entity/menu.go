package domain

import "time"

// MenuItem is this core's read-only view of a catalog entry. The menu
// catalog itself is owned by an external system; a local replica is kept
// current from its published price-change events.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Image       string
	Featured    bool
	CreatedAt   time.Time
}
