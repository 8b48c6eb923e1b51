package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// CartController mutates the in-memory cart. Items are added by menu item
// id and resolved against the catalog cache.
type CartController struct {
	cart services.CartService
	data services.DataService
}

func NewCartController(cart services.CartService, data services.DataService) *CartController {
	return &CartController{cart: cart, data: data}
}

func (cc *CartController) snapshot() gin.H {
	return gin.H{
		"items":      cc.cart.Items(),
		"item_count": cc.cart.ItemCount(),
		"cart_total": cc.cart.CartTotal(),
	}
}

// Get handles GET /cart.
func (cc *CartController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, cc.snapshot())
}

type addItemRequest struct {
	MenuItemID int `json:"menu_item_id" binding:"required"`
}

// AddItem handles POST /cart/items.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	for _, item := range cc.data.MenuItems() {
		if item.ID == req.MenuItemID {
			cc.cart.AddItem(item)
			ctx.JSON(http.StatusOK, cc.snapshot())
			return
		}
	}
	ctx.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity handles PUT /cart/items/:id. A quantity of zero or less
// removes the entry.
func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req updateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cc.cart.UpdateQuantity(id, req.Quantity)
	ctx.JSON(http.StatusOK, cc.snapshot())
}

// RemoveItem handles DELETE /cart/items/:id.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	cc.cart.RemoveItem(id)
	ctx.JSON(http.StatusOK, cc.snapshot())
}

// Clear handles DELETE /cart.
func (cc *CartController) Clear(ctx *gin.Context) {
	cc.cart.Clear()
	ctx.JSON(http.StatusOK, cc.snapshot())
}
