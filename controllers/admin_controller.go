package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController handles the back office: menu management, order status
// updates, the customer list, and the dashboard.
type AdminController struct {
	data services.DataService
}

func NewAdminController(data services.DataService) *AdminController {
	return &AdminController{data: data}
}

// adminFrame is the sidebar navigation wrapped around admin destinations.
var adminFrame = gin.H{
	"nav": []gin.H{
		{"label": "Dashboard", "path": "/admin/dashboard"},
		{"label": "Manage Menu", "path": "/admin/menu"},
		{"label": "Manage Orders", "path": "/admin/orders"},
		{"label": "Manage Customers", "path": "/admin/customers"},
	},
	"logout": "/auth/logout",
}

func respond(ctx *gin.Context, status int, payload gin.H) {
	if middleware.InAdminFrame(ctx) {
		payload["frame"] = adminFrame
	}
	ctx.JSON(status, payload)
}

// Dashboard handles GET /admin/dashboard.
func (ac *AdminController) Dashboard(ctx *gin.Context) {
	respond(ctx, http.StatusOK, gin.H{"stats": ac.data.Stats()})
}

// ListMenu handles GET /admin/menu.
func (ac *AdminController) ListMenu(ctx *gin.Context) {
	respond(ctx, http.StatusOK, gin.H{"menu_items": ac.data.MenuItems()})
}

// AddMenuItem handles POST /admin/menu.
func (ac *AdminController) AddMenuItem(ctx *gin.Context) {
	var draft models.MenuItemDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ac.data.AddMenuItem(ctx.Request.Context(), draft)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respond(ctx, http.StatusCreated, gin.H{"menu_item": item})
}

// UpdateMenuItem handles PUT /admin/menu/:id.
func (ac *AdminController) UpdateMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	var draft models.MenuItemDraft
	if err := ctx.ShouldBindJSON(&draft); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item := models.MenuItem{
		ID:          id,
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Description: draft.Description,
		Image:       draft.Image,
	}

	updated, svcErr := ac.data.UpdateMenuItem(ctx.Request.Context(), item)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respond(ctx, http.StatusOK, gin.H{"menu_item": updated})
}

// DeleteMenuItem handles DELETE /admin/menu/:id.
func (ac *AdminController) DeleteMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}

	if svcErr := ac.data.DeleteMenuItem(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respond(ctx, http.StatusOK, gin.H{"deleted": id})
}

// ListOrders handles GET /admin/orders.
func (ac *AdminController) ListOrders(ctx *gin.Context) {
	respond(ctx, http.StatusOK, gin.H{"orders": ac.data.Orders()})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func (ac *AdminController) UpdateOrderStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := ac.data.UpdateOrderStatus(ctx.Request.Context(), id, req.Status)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respond(ctx, http.StatusOK, gin.H{"order": order})
}

// ListCustomers handles GET /admin/customers.
func (ac *AdminController) ListCustomers(ctx *gin.Context) {
	if svcErr := ac.data.FetchCustomers(ctx.Request.Context()); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	respond(ctx, http.StatusOK, gin.H{"customers": ac.data.Customers()})
}
