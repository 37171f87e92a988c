package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/logging"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Every
// validation and state-machine error reaches the caller with enough detail
// to identify the offending field or transition.
func respondError(c *gin.Context, err error) {
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error(), "field": missing.Field})
		return
	}

	var unknown *domain.UnknownItemError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unknown.Error(), "menu_item_id": unknown.ItemID})
		return
	}

	var invalid *domain.InvalidTransitionError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusConflict, gin.H{"error": invalid.Error(), "from": string(invalid.From), "to": string(invalid.To)})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoopTransition),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrCheckoutInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logging.From(c).Error("unhandled error", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
