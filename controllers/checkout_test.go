package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"restaurant-backend/database"
	"restaurant-backend/models"
	"restaurant-backend/repository"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupCheckout(t *testing.T) (*gin.Engine, services.CartService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	store := database.NewStore(db, zap.NewNop())
	ctx := context.Background()
	api := repository.NewMockAPI(ctx, store, 0, zap.NewNop())

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)
	data := services.NewDataService(api, auth, zap.NewNop())
	data.LoadAll(ctx)
	cart := services.NewCartService()

	cartCtrl := NewCartController(cart, data)
	orderCtrl := NewOrderController(data, cart, auth)

	r := gin.New()
	r.GET("/cart", cartCtrl.Get)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PUT("/cart/items/:id", cartCtrl.UpdateQuantity)
	r.POST("/checkout", orderCtrl.Checkout)
	return r, cart
}

func postJSON(r *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutClearsCart(t *testing.T) {
	r, cart := setupCheckout(t)

	rec := postJSON(r, "/cart/items", `{"menu_item_id": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postJSON(r, "/cart/items", `{"menu_item_id": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, cart.ItemCount())

	rec = postJSON(r, "/checkout", `{
		"customer_name": "walk-in",
		"customer_phone": "011-0000000",
		"customer_address": "counter",
		"payment_method": "Cash on Delivery"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 104, resp.Order.ID)
	assert.Equal(t, models.GuestUserID, resp.Order.UserID)
	assert.InDelta(t, 12.00, resp.Order.TotalPrice, 1e-9)

	assert.Zero(t, cart.ItemCount())
}

func TestCheckoutWithEmptyCartIsRefused(t *testing.T) {
	r, cart := setupCheckout(t)

	rec := postJSON(r, "/checkout", `{
		"customer_name": "walk-in",
		"customer_phone": "011-0000000",
		"customer_address": "counter",
		"payment_method": "Cash on Delivery"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
	assert.Zero(t, cart.ItemCount())
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	r, cart := setupCheckout(t)

	rec := postJSON(r, "/cart/items", `{"menu_item_id": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Unknown payment method is rejected before the backend is called.
	rec = postJSON(r, "/checkout", `{
		"customer_name": "walk-in",
		"customer_phone": "011-0000000",
		"customer_address": "counter",
		"payment_method": "Barter"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestAddUnknownMenuItemToCart(t *testing.T) {
	r, cart := setupCheckout(t)

	rec := postJSON(r, "/cart/items", `{"menu_item_id": 999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, cart.ItemCount())
}
