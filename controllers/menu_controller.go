package controllers

import (
	"net/http"

	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// MenuController serves the public menu from the catalog cache.
type MenuController struct {
	data services.DataService
}

func NewMenuController(data services.DataService) *MenuController {
	return &MenuController{data: data}
}

// List handles GET /menu.
func (mc *MenuController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"menu_items": mc.data.MenuItems()})
}
