package kafka

import (
	"context"
	"errors"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// PriceUpdater writes a new price into the local menu replica.
type PriceUpdater interface {
	UpdatePrice(ctx context.Context, itemID string, priceCents int64) error
}

// CacheInvalidator drops a cached menu item after its replica row changed.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, itemID string) error
}

// MenuPriceChangedHandler applies price-change events from the external menu
// system: update the replica row, then invalidate the cached copy. Orders
// already created keep their snapshotted prices; only future pricing sees
// the change.
type MenuPriceChangedHandler struct {
	Repo  PriceUpdater
	Cache CacheInvalidator // optional
}

func NewMenuPriceChangedHandler(repo PriceUpdater, cache CacheInvalidator) *MenuPriceChangedHandler {
	return &MenuPriceChangedHandler{Repo: repo, Cache: cache}
}

func (h *MenuPriceChangedHandler) Handle(ctx context.Context, ev usecase.MenuPriceChangedMsg) error {
	if err := h.Repo.UpdatePrice(ctx, ev.ItemID, ev.PriceCents); err != nil {
		// An unknown item means the replica has not seen this item yet;
		// retrying will not help until a fuller sync runs, so skip it.
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil
		}
		return err
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.Invalidate(ctx, ev.ItemID)
	}
	return nil
}
