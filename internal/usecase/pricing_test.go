package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

func testPricer() *usecase.Pricer {
	return usecase.NewPricer(usecase.PricingConfig{
		TaxRateBps:       800, // 8%
		DeliveryFeeCents: 500,
		Currency:         "USD",
	})
}

func TestQuote_Totals(t *testing.T) {
	catalog := newMemCatalog(
		domain.MenuItem{ID: "itemA", Name: "Chicken Biryani", PriceCents: 1000},
		domain.MenuItem{ID: "itemB", Name: "Garlic Naan", PriceCents: 500},
	)

	lines := []domain.CartLine{
		{ItemID: "itemA", Quantity: 2},
		{ItemID: "itemB", Quantity: 1},
	}

	totals, priced, err := testPricer().Quote(context.Background(), lines, catalog)
	require.NoError(t, err)

	require.Equal(t, int64(2500), totals.SubtotalCents)
	require.Equal(t, int64(200), totals.TaxCents)
	require.Equal(t, int64(500), totals.DeliveryFeeCents)
	require.Equal(t, int64(3200), totals.TotalCents)
	require.Equal(t, totals.SubtotalCents+totals.TaxCents+totals.DeliveryFeeCents, totals.TotalCents)

	require.Len(t, priced, 2)
	require.Equal(t, "Chicken Biryani", priced[0].Name)
	require.Equal(t, int64(1000), priced[0].UnitPriceCents)
	require.Equal(t, 2, priced[0].Quantity)
}

func TestQuote_UnknownItem(t *testing.T) {
	catalog := newMemCatalog(domain.MenuItem{ID: "itemA", PriceCents: 1000})

	lines := []domain.CartLine{
		{ItemID: "itemA", Quantity: 1},
		{ItemID: "ghost", Quantity: 1},
	}

	_, _, err := testPricer().Quote(context.Background(), lines, catalog)
	var unknown *domain.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "ghost", unknown.ItemID)
}

// The delivery fee is flat per order: an empty line set still prices to
// fee-only, which is why checkout guards against empty carts first.
func TestQuote_EmptyLines(t *testing.T) {
	totals, priced, err := testPricer().Quote(context.Background(), nil, newMemCatalog())
	require.NoError(t, err)
	require.Empty(t, priced)
	require.Equal(t, int64(0), totals.SubtotalCents)
	require.Equal(t, int64(500), totals.TotalCents)
}

func TestQuote_TaxTruncation(t *testing.T) {
	catalog := newMemCatalog(domain.MenuItem{ID: "itemA", PriceCents: 333})

	totals, _, err := testPricer().Quote(context.Background(),
		[]domain.CartLine{{ItemID: "itemA", Quantity: 1}}, catalog)
	require.NoError(t, err)

	// 333 * 800 / 10000 = 26.64, truncated toward zero
	require.Equal(t, int64(26), totals.TaxCents)
	require.Equal(t, int64(333+26+500), totals.TotalCents)
}
