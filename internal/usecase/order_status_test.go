package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

func seedOrder(t *testing.T, orders *memOrderRepo, st domain.Status) *domain.Order {
	t.Helper()
	o := &domain.Order{
		ID:            "ord-1",
		UserID:        "u1",
		CustomerEmail: "asha@example.com",
		Status:        st,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, orders.Create(context.Background(), o))
	return o
}

func TestOrderStatus_ForwardAndSkip(t *testing.T) {
	cases := []struct {
		from, to domain.Status
	}{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusConfirmed, domain.StatusPreparing},
		{domain.StatusPreparing, domain.StatusOutForDelivery},
		{domain.StatusOutForDelivery, domain.StatusDelivered},
		// skipping intermediate stages is allowed
		{domain.StatusPending, domain.StatusPreparing},
		{domain.StatusPending, domain.StatusDelivered},
		{domain.StatusConfirmed, domain.StatusOutForDelivery},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			orders := newMemOrderRepo()
			events := &eventRecorder{}
			uc := usecase.NewOrderStatus(orders, events)
			seedOrder(t, orders, tc.from)

			got, err := uc.Set(context.Background(), "ord-1", tc.to)
			require.NoError(t, err)
			require.Equal(t, tc.to, got.Status)

			stored, err := orders.GetByID(context.Background(), "ord-1")
			require.NoError(t, err)
			require.Equal(t, tc.to, stored.Status)

			require.Len(t, events.changed, 1)
			require.Equal(t, "ord-1", events.changed[0].OrderID)
			require.Equal(t, string(tc.to), events.changed[0].Status)
			require.Equal(t, "asha@example.com", events.changed[0].CustomerEmail)
		})
	}
}

func TestOrderStatus_BackwardRejected(t *testing.T) {
	cases := []struct {
		from, to domain.Status
	}{
		{domain.StatusConfirmed, domain.StatusPending},
		{domain.StatusPreparing, domain.StatusConfirmed},
		{domain.StatusDelivered, domain.StatusOutForDelivery},
		{domain.StatusOutForDelivery, domain.StatusPending},
	}
	for _, tc := range cases {
		orders := newMemOrderRepo()
		uc := usecase.NewOrderStatus(orders, nil)
		seedOrder(t, orders, tc.from)

		_, err := uc.Set(context.Background(), "ord-1", tc.to)
		var inv *domain.InvalidTransitionError
		require.ErrorAs(t, err, &inv)
		require.Equal(t, tc.from, inv.From)
		require.Equal(t, tc.to, inv.To)

		stored, err := orders.GetByID(context.Background(), "ord-1")
		require.NoError(t, err)
		require.Equal(t, tc.from, stored.Status)
	}
}

func TestOrderStatus_CancelFromAnyActive(t *testing.T) {
	for _, from := range []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusPreparing,
		domain.StatusOutForDelivery,
	} {
		orders := newMemOrderRepo()
		uc := usecase.NewOrderStatus(orders, nil)
		seedOrder(t, orders, from)

		got, err := uc.Set(context.Background(), "ord-1", domain.StatusCancelled)
		require.NoError(t, err, "cancel from %s", from)
		require.Equal(t, domain.StatusCancelled, got.Status)
	}
}

func TestOrderStatus_TerminalAbsorbing(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusDelivered, domain.StatusCancelled} {
		for _, to := range []domain.Status{
			domain.StatusPending,
			domain.StatusConfirmed,
			domain.StatusPreparing,
			domain.StatusOutForDelivery,
			domain.StatusDelivered,
			domain.StatusCancelled,
		} {
			if from == to {
				continue
			}
			orders := newMemOrderRepo()
			uc := usecase.NewOrderStatus(orders, nil)
			seedOrder(t, orders, from)

			_, err := uc.Set(context.Background(), "ord-1", to)
			var inv *domain.InvalidTransitionError
			require.ErrorAs(t, err, &inv, "%s to %s", from, to)
		}
	}
}

func TestOrderStatus_Noop(t *testing.T) {
	orders := newMemOrderRepo()
	events := &eventRecorder{}
	uc := usecase.NewOrderStatus(orders, events)
	seedOrder(t, orders, domain.StatusConfirmed)

	_, err := uc.Set(context.Background(), "ord-1", domain.StatusConfirmed)
	require.ErrorIs(t, err, domain.ErrNoopTransition)
	require.Empty(t, events.changed)
}

func TestOrderStatus_UnknownOrder(t *testing.T) {
	uc := usecase.NewOrderStatus(newMemOrderRepo(), nil)

	_, err := uc.Set(context.Background(), "missing", domain.StatusConfirmed)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// The CAS write loses when another writer moved the status between our read
// and our update.
func TestOrderStatus_ConcurrentWriterConflict(t *testing.T) {
	orders := newMemOrderRepo()
	events := &eventRecorder{}
	uc := usecase.NewOrderStatus(orders, events)
	seedOrder(t, orders, domain.StatusPending)

	// first transition wins
	_, err := uc.Set(context.Background(), "ord-1", domain.StatusConfirmed)
	require.NoError(t, err)

	// sneak the stored status forward behind the usecase's back, then race a
	// stale-looking transition against it
	orders.setStatus("ord-1", domain.StatusPending)
	_, err = uc.Set(context.Background(), "ord-1", domain.StatusConfirmed)
	require.NoError(t, err)

	// now make the CAS itself fail: read sees Confirmed, writer flips it
	// before the update lands
	conflicting := &conflictingOrderRepo{memOrderRepo: orders}
	uc = usecase.NewOrderStatus(conflicting, events)
	_, err = uc.Set(context.Background(), "ord-1", domain.StatusPreparing)
	require.ErrorIs(t, err, domain.ErrConflict)
}

// conflictingOrderRepo flips the stored status after every read, so the
// subsequent compare-and-swap always misses.
type conflictingOrderRepo struct {
	*memOrderRepo
}

func (r *conflictingOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, err := r.memOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.memOrderRepo.setStatus(id, domain.StatusOutForDelivery)
	return o, nil
}
