package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// MenuHandler exposes read-only views of the menu catalog replica to the
// storefront. Menu authorship lives in the external menu system.
type MenuHandler struct {
	catalog usecase.Catalog
}

func NewMenuHandler(catalog usecase.Catalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

func (h *MenuHandler) ListMenu(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
			return
		}
		featured = &v
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	items, err := h.catalog.List(ctx, c.Query("category"), featured)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]menuItemResp, 0, len(items))
	for _, it := range items {
		out = append(out, toMenuItemResp(it))
	}
	c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	item, err := h.catalog.Item(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResp(item))
}
