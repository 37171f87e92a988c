package usecase

// Published to RabbitMQ on successful checkout.
type OrderPlacedMsg struct {
	OrderID       string `json:"orderId"`
	UserID        string `json:"userId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	TotalCents    int64  `json:"totalCents"`
	Currency      string `json:"currency"`
}

// Published to RabbitMQ after a status transition commits.
type OrderStatusChangedMsg struct {
	OrderID       string `json:"orderId"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
}

// Sent by the menu system on Kafka when an item's price changes.
type MenuPriceChangedMsg struct {
	ItemID     string `json:"itemId"`
	PriceCents int64  `json:"priceCents"`
}
