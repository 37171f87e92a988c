package usecase

import (
	"context"
	"errors"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

// PricingConfig is injected at construction; no call site carries its own
// rate or fee.
type PricingConfig struct {
	TaxRateBps       int64 // e.g. 800 = 8%
	DeliveryFeeCents int64
	Currency         string
}

// Totals holds an order's money breakdown in integer cents. Floats never
// touch pricing; rounding drift between a displayed subtotal and a stored
// total is not acceptable.
type Totals struct {
	SubtotalCents    int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64
}

type Pricer struct {
	cfg PricingConfig
}

func NewPricer(cfg PricingConfig) *Pricer {
	return &Pricer{cfg: cfg}
}

func (p *Pricer) Currency() string { return p.cfg.Currency }

// Quote prices the given lines against current catalog prices. It returns
// the totals together with the priced lines (item name and unit price
// snapshotted), so checkout resolves each item exactly once.
//
// The delivery fee is flat per order regardless of line count, so quoting an
// empty line set still yields a non-zero total; callers guard empty carts
// before invoking checkout.
func (p *Pricer) Quote(ctx context.Context, lines []domain.CartLine, catalog Catalog) (Totals, []domain.OrderLine, error) {
	priced := make([]domain.OrderLine, 0, len(lines))
	var subtotal int64
	for _, l := range lines {
		item, err := catalog.Item(ctx, l.ItemID)
		if errors.Is(err, domain.ErrItemNotFound) {
			return Totals{}, nil, &domain.UnknownItemError{ItemID: l.ItemID}
		}
		if err != nil {
			return Totals{}, nil, err
		}
		subtotal += item.PriceCents * int64(l.Quantity)
		priced = append(priced, domain.OrderLine{
			ItemID:         item.ID,
			Name:           item.Name,
			UnitPriceCents: item.PriceCents,
			Quantity:       l.Quantity,
		})
	}

	t := Totals{
		SubtotalCents:    subtotal,
		TaxCents:         subtotal * p.cfg.TaxRateBps / 10000,
		DeliveryFeeCents: p.cfg.DeliveryFeeCents,
	}
	t.TotalCents = t.SubtotalCents + t.TaxCents + t.DeliveryFeeCents
	return t, priced, nil
}
