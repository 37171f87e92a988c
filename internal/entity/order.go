package domain

import "time"

type Status string

const (
	StatusPending        Status = "Pending"
	StatusConfirmed      Status = "Confirmed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// statusRank orders the happy path. Cancelled sits outside the rank: it is
// reachable from any non-terminal status and never left.
var statusRank = map[Status]int{
	StatusPending:        0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusRank[st]; ok {
		return st, nil
	}
	if st == StatusCancelled {
		return st, nil
	}
	return "", ErrUnknownStatus
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CheckTransition validates a status change against the lifecycle machine:
// forward moves may skip intermediate stages, Cancelled is reachable from any
// non-terminal status, terminal states are never left, and a request for the
// current status is rejected so stale operator views get feedback.
func CheckTransition(from, to Status) error {
	if from == to {
		return ErrNoopTransition
	}
	if from.Terminal() {
		return &InvalidTransitionError{From: from, To: to}
	}
	if to == StatusCancelled {
		return nil
	}
	if statusRank[to] < statusRank[from] {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// OrderLine is a snapshot of a cart line taken at checkout. The unit price is
// copied from the catalog at order time and never recomputed.
type OrderLine struct {
	ItemID         string
	Name           string
	UnitPriceCents int64
	Quantity       int
}

// Order is immutable after creation except for Status and UpdatedAt.
type Order struct {
	ID               string
	UserID           string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	DeliveryAddress  string
	Lines            []OrderLine
	SubtotalCents    int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64
	Currency         string
	PaymentMethod    string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
