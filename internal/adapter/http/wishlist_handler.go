package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type WishlistHandler struct {
	wishlists *usecase.WishlistService
}

func NewWishlistHandler(wishlists *usecase.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	wl, err := h.wishlists.Get(ctx, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResp(wl))
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	wl, err := h.wishlists.Add(ctx, c.Param("userId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResp(wl))
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	wl, err := h.wishlists.Remove(ctx, c.Param("userId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResp(wl))
}
