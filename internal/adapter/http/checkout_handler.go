package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/http/middleware"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type CheckoutHandler struct {
	checkout *usecase.Checkout
}

func NewCheckoutHandler(checkout *usecase.Checkout) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type checkoutReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Checkout converts the user's cart into an order. Field presence is
// validated by the use case so missing fields fail in a fixed order with the
// field named, rather than as a generic binding error.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	order, err := h.checkout.Execute(ctx, c.Param("userId"), usecase.CustomerInfo{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.OrdersPlaced.Inc()
	c.JSON(http.StatusCreated, toOrderResp(order))
}
