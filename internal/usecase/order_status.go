package usecase

import (
	"context"
	"time"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/logging"
)

// OrderStatus is the sole authority for status changes after creation. The
// transition table is applied against the current stored status, never a
// caller-supplied assumed-previous one; the write is a compare-and-swap so a
// losing race surfaces a conflict instead of corrupting state.
type OrderStatus struct {
	orders OrderRepo
	events OrderEvents
}

func NewOrderStatus(orders OrderRepo, events OrderEvents) *OrderStatus {
	return &OrderStatus{orders: orders, events: events}
}

func (uc *OrderStatus) Set(ctx context.Context, orderID string, to domain.Status) (*domain.Order, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckTransition(order.Status, to); err != nil {
		return nil, err
	}

	ok, err := uc.orders.UpdateStatusIf(ctx, orderID, order.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Stored status moved between our read and the write.
		return nil, domain.ErrConflict
	}

	order.Status = to
	order.UpdatedAt = time.Now().UTC()

	if uc.events != nil {
		msg := OrderStatusChangedMsg{
			OrderID:       order.ID,
			CustomerEmail: order.CustomerEmail,
			Status:        string(to),
		}
		if err := uc.events.PublishStatusChanged(ctx, msg); err != nil {
			logging.FromCtx(ctx).Warn("publish order.status_changed failed", "order_id", order.ID, "err", err)
		}
	}
	return order, nil
}
