package notify

import (
	"context"
	"log/slog"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// LogNotifier records order events instead of delivering them. It stands in
// for the restaurant's email system until that collaborator is wired up.
type LogNotifier struct {
	l *slog.Logger
}

func NewLogNotifier(l *slog.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) OrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	n.l.Info("order placed",
		"order_id", msg.OrderID,
		"customer_email", msg.CustomerEmail,
		"total_cents", msg.TotalCents,
		"currency", msg.Currency)
	return nil
}

func (n *LogNotifier) OrderStatusChanged(ctx context.Context, msg usecase.OrderStatusChangedMsg) error {
	n.l.Info("order status changed",
		"order_id", msg.OrderID,
		"customer_email", msg.CustomerEmail,
		"status", msg.Status)
	return nil
}
