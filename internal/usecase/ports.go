package usecase

import (
	"context"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

// CartRepo persists per-user carts. Mutations must be atomic at the line
// level: a concurrent AddLine for the same item must never lose an increment.
type CartRepo interface {
	Get(ctx context.Context, userID string) (domain.Cart, error)
	// AddLine increments the line quantity by qty, creating the line if absent.
	AddLine(ctx context.Context, userID, itemID string, qty int) error
	// SetLine writes an absolute quantity, creating or overwriting the line.
	SetLine(ctx context.Context, userID, itemID string, qty int) error
	RemoveLine(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type WishlistRepo interface {
	Get(ctx context.Context, userID string) (domain.Wishlist, error)
	Add(ctx context.Context, userID, itemID string) error
	Remove(ctx context.Context, userID, itemID string) error
	Contains(ctx context.Context, userID, itemID string) (bool, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatusIf applies a compare-and-swap on the stored status and
	// reports whether a row changed. false with nil error means the stored
	// status was no longer fromStatus.
	UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus domain.Status) (bool, error)
}

// Catalog is the read-only lookup into the external menu system.
type Catalog interface {
	// Item resolves a menu item by id; domain.ErrItemNotFound when absent.
	Item(ctx context.Context, itemID string) (domain.MenuItem, error)
	List(ctx context.Context, category string, featured *bool) ([]domain.MenuItem, error)
}

// CheckoutLock serializes checkout per user id.
type CheckoutLock interface {
	TryLock(ctx context.Context, userID string) (bool, error)
	Unlock(ctx context.Context, userID string) error
}

// OrderEvents publishes lifecycle events for downstream consumers
// (notification delivery lives outside this core).
type OrderEvents interface {
	PublishPlaced(ctx context.Context, msg OrderPlacedMsg) error
	PublishStatusChanged(ctx context.Context, msg OrderStatusChangedMsg) error
}
