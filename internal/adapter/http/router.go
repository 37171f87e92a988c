package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/http/middleware"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/logging"
)

func NewRouter(
	menu *MenuHandler,
	cart *CartHandler,
	wishlist *WishlistHandler,
	checkout *CheckoutHandler,
	orders *OrderHandler,
	tokens *TokenHandler,
	authz *middleware.Authz,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/token", tokens.IssueToken)

	v1 := r.Group("/v1")
	{
		v1.GET("/menu", menu.ListMenu)
		v1.GET("/menu/:id", menu.GetMenuItem)

		v1.GET("/cart/:userId", cart.GetCart)
		v1.POST("/cart/:userId/items", cart.AddItem)
		v1.PUT("/cart/:userId/items/:itemId", cart.SetQuantity)
		v1.DELETE("/cart/:userId/items/:itemId", cart.RemoveItem)
		v1.DELETE("/cart/:userId", cart.ClearCart)

		v1.GET("/wishlist/:userId", wishlist.GetWishlist)
		v1.POST("/wishlist/:userId/items/:itemId", wishlist.AddItem)
		v1.DELETE("/wishlist/:userId/items/:itemId", wishlist.RemoveItem)

		v1.POST("/checkout/:userId", checkout.Checkout)

		// operator surface
		v1.GET("/orders", authz.Require("orders.read"), orders.ListOrders)
		v1.GET("/orders/:id", authz.Require("orders.read"), orders.GetOrderByID)
		v1.PATCH("/orders/:id/status", authz.Require("orders.write"), orders.SetStatus)
	}

	return r
}
