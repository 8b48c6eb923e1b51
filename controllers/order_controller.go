package controllers

import (
	"net/http"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles checkout and the customer's order history.
type OrderController struct {
	data services.DataService
	cart services.CartService
	auth services.AuthService
}

func NewOrderController(data services.DataService, cart services.CartService, auth services.AuthService) *OrderController {
	return &OrderController{data: data, cart: cart, auth: auth}
}

// Checkout handles POST /checkout. The cart is cleared only after the
// order was accepted; a failed submission leaves it untouched.
func (oc *OrderController) Checkout(ctx *gin.Context) {
	var req services.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	req.Items = oc.cart.Items()

	order, svcErr := oc.data.SubmitOrder(ctx.Request.Context(), req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	oc.cart.Clear()
	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// History handles GET /orders, listing the logged-in customer's own orders.
func (oc *OrderController) History(ctx *gin.Context) {
	state, user := oc.auth.Current()
	if state != services.SessionAuthenticated {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders := []models.Order{}
	for _, o := range oc.data.Orders() {
		if o.UserID == user.ID {
			orders = append(orders, o)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}
