package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

func respondWith(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondError_Statuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"empty cart", domain.ErrEmptyCart, http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid phone", domain.ErrInvalidPhone, http.StatusBadRequest},
		{"unknown status", domain.ErrUnknownStatus, http.StatusBadRequest},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"noop transition", domain.ErrNoopTransition, http.StatusConflict},
		{"concurrency conflict", domain.ErrConflict, http.StatusConflict},
		{"checkout in progress", domain.ErrCheckoutInProgress, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := respondWith(t, tc.err)
			require.Equal(t, tc.code, code)
			require.Equal(t, tc.err.Error(), body["error"])
		})
	}
}

func TestRespondError_MissingField(t *testing.T) {
	code, body := respondWith(t, &domain.MissingFieldError{Field: "email"})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "email", body["field"])
}

func TestRespondError_UnknownItem(t *testing.T) {
	code, body := respondWith(t, &domain.UnknownItemError{ItemID: "ghost"})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, "ghost", body["menu_item_id"])
}

func TestRespondError_InvalidTransition(t *testing.T) {
	code, body := respondWith(t, &domain.InvalidTransitionError{
		From: domain.StatusDelivered,
		To:   domain.StatusPending,
	})
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, string(domain.StatusDelivered), body["from"])
	require.Equal(t, string(domain.StatusPending), body["to"])
}
