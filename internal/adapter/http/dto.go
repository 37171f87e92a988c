package http

import (
	"time"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

type cartLineResp struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type cartResp struct {
	UserID    string         `json:"user_id"`
	Items     []cartLineResp `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toCartResp(cart domain.Cart) cartResp {
	items := make([]cartLineResp, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, cartLineResp{MenuItemID: l.ItemID, Quantity: l.Quantity})
	}
	return cartResp{UserID: cart.UserID, Items: items, UpdatedAt: cart.UpdatedAt}
}

type wishlistResp struct {
	UserID      string    `json:"user_id"`
	MenuItemIDs []string  `json:"menu_item_ids"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toWishlistResp(wl domain.Wishlist) wishlistResp {
	ids := wl.ItemIDs
	if ids == nil {
		ids = []string{}
	}
	return wishlistResp{UserID: wl.UserID, MenuItemIDs: ids, UpdatedAt: wl.UpdatedAt}
}

type orderLineResp struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type orderResp struct {
	OrderID          string          `json:"order_id"`
	UserID           string          `json:"user_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	CustomerPhone    string          `json:"customer_phone"`
	DeliveryAddress  string          `json:"delivery_address"`
	Items            []orderLineResp `json:"items"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	TaxCents         int64           `json:"tax_cents"`
	DeliveryFeeCents int64           `json:"delivery_fee_cents"`
	TotalCents       int64           `json:"total_cents"`
	Currency         string          `json:"currency"`
	PaymentMethod    string          `json:"payment_method"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toOrderResp(o *domain.Order) orderResp {
	items := make([]orderLineResp, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, orderLineResp{
			MenuItemID:     l.ItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	return orderResp{
		OrderID:          o.ID,
		UserID:           o.UserID,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		CustomerPhone:    o.CustomerPhone,
		DeliveryAddress:  o.DeliveryAddress,
		Items:            items,
		SubtotalCents:    o.SubtotalCents,
		TaxCents:         o.TaxCents,
		DeliveryFeeCents: o.DeliveryFeeCents,
		TotalCents:       o.TotalCents,
		Currency:         o.Currency,
		PaymentMethod:    o.PaymentMethod,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

type menuItemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMenuItemResp(it domain.MenuItem) menuItemResp {
	return menuItemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		PriceCents:  it.PriceCents,
		Category:    it.Category,
		Image:       it.Image,
		Featured:    it.Featured,
		CreatedAt:   it.CreatedAt,
	}
}
