package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/logging"
)

// PaymentMethodCOD is the only accepted payment method.
const PaymentMethodCOD = "cash_on_delivery"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Checkout converts a cart into a persisted, immutable order. Pricing here
// is authoritative: any quote the client saw earlier is advisory, and the
// stored total is always recomputed from current catalog prices against the
// snapshotted lines.
type Checkout struct {
	carts   CartRepo
	orders  OrderRepo
	catalog Catalog
	pricer  *Pricer
	lock    CheckoutLock
	events  OrderEvents
}

func NewCheckout(carts CartRepo, orders OrderRepo, catalog Catalog, pricer *Pricer, lock CheckoutLock, events OrderEvents) *Checkout {
	return &Checkout{carts: carts, orders: orders, catalog: catalog, pricer: pricer, lock: lock, events: events}
}

func (uc *Checkout) Execute(ctx context.Context, userID string, info CustomerInfo) (*domain.Order, error) {
	// Two concurrent checkouts must not both drain the same cart. The loser
	// either fails here or, after the winner commits, sees an empty cart.
	ok, err := uc.lock.TryLock(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCheckoutInProgress
	}
	defer func() {
		if err := uc.lock.Unlock(ctx, userID); err != nil {
			logging.FromCtx(ctx).Warn("checkout unlock failed", "user_id", userID, "err", err)
		}
	}()

	cart, err := uc.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, domain.ErrEmptyCart
	}

	if err := validateCustomer(&info); err != nil {
		return nil, err
	}

	totals, lines, err := uc.pricer.Quote(ctx, cart.Lines, uc.catalog)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:               uuid.NewString(),
		UserID:           userID,
		CustomerName:     info.Name,
		CustomerEmail:    info.Email,
		CustomerPhone:    info.Phone,
		DeliveryAddress:  info.Address,
		Lines:            lines,
		SubtotalCents:    totals.SubtotalCents,
		TaxCents:         totals.TaxCents,
		DeliveryFeeCents: totals.DeliveryFeeCents,
		TotalCents:       totals.TotalCents,
		Currency:         uc.pricer.Currency(),
		PaymentMethod:    PaymentMethodCOD,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := uc.carts.Clear(ctx, userID); err != nil {
		// The order is committed; a cart left behind is recoverable, a lost
		// order is not.
		logging.FromCtx(ctx).Error("clear cart after checkout failed", "user_id", userID, "order_id", order.ID, "err", err)
	}

	if uc.events != nil {
		msg := OrderPlacedMsg{
			OrderID:       order.ID,
			UserID:        order.UserID,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			TotalCents:    order.TotalCents,
			Currency:      order.Currency,
		}
		if err := uc.events.PublishPlaced(ctx, msg); err != nil {
			logging.FromCtx(ctx).Warn("publish order.placed failed", "order_id", order.ID, "err", err)
		}
	}

	return order, nil
}

// validateCustomer applies the checkout validation chain in order, failing
// fast with a distinct error kind per step. Phone is normalized in place.
func validateCustomer(info *CustomerInfo) error {
	fields := []struct {
		name, value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &domain.MissingFieldError{Field: f.name}
		}
	}

	if !emailRe.MatchString(info.Email) {
		return domain.ErrInvalidEmail
	}

	phone, ok := normalizePhone(info.Phone)
	if !ok {
		return domain.ErrInvalidPhone
	}
	info.Phone = phone
	return nil
}

// normalizePhone strips separator characters and requires exactly 10 digits.
func normalizePhone(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '(' || r == ')':
			// separator, dropped
		default:
			return "", false
		}
	}
	if b.Len() != 10 {
		return "", false
	}
	return b.String(), true
}
