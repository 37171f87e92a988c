package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type OrderHandler struct {
	status *usecase.OrderStatus
	query  usecase.OrderRepo
}

func NewOrderHandler(status *usecase.OrderStatus, query usecase.OrderRepo) *OrderHandler {
	return &OrderHandler{status: status, query: query}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.query.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]orderResp, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResp(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	order, err := h.query.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResp(order))
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus applies a lifecycle transition. The target is validated against
// the order's current stored status, never a caller-supplied previous one.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	to, err := domain.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	order, err := h.status.Set(ctx, c.Param("id"), to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResp(order))
}
