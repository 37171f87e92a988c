package queue

import (
	"context"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// Notifier is the port to the external notification delivery system (email,
// in the restaurant's case). This core only hands events over; composing and
// sending messages is the collaborator's job.
type Notifier interface {
	OrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error
	OrderStatusChanged(ctx context.Context, msg usecase.OrderStatusChangedMsg) error
}

// OrderNotifyHandler drains the order event queues into the Notifier.
type OrderNotifyHandler struct {
	N Notifier
}

func NewOrderNotifyHandler(n Notifier) *OrderNotifyHandler {
	return &OrderNotifyHandler{N: n}
}

// HandlePlaced is intended for queue.JSONHandler[usecase.OrderPlacedMsg].
func (h *OrderNotifyHandler) HandlePlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	return h.N.OrderPlaced(ctx, msg)
}

// HandleStatusChanged is intended for queue.JSONHandler[usecase.OrderStatusChangedMsg].
func (h *OrderNotifyHandler) HandleStatusChanged(ctx context.Context, msg usecase.OrderStatusChangedMsg) error {
	return h.N.OrderStatusChanged(ctx, msg)
}
