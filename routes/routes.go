package routes

import (
	"restaurant-backend/controllers"
	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// Register wires all routes. Menu browsing, the cart, and checkout are
// open to guests; order history is customer-only and the back office is
// admin-only.
func Register(
	r *gin.Engine,
	auth services.AuthService,
	authCtrl *controllers.AuthController,
	menuCtrl *controllers.MenuController,
	cartCtrl *controllers.CartController,
	orderCtrl *controllers.OrderController,
	adminCtrl *controllers.AdminController,
) {
	r.POST("/auth/register", authCtrl.Register)
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/auth/logout", authCtrl.Logout)
	r.GET("/auth/me", authCtrl.Me)

	r.GET("/menu", menuCtrl.List)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PUT("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	r.POST("/checkout", orderCtrl.Checkout)

	history := r.Group("/orders")
	history.Use(middleware.RequireRoles(auth, models.RoleCustomer))
	history.GET("", orderCtrl.History)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireRoles(auth, models.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/menu", adminCtrl.ListMenu)
		admin.POST("/menu", adminCtrl.AddMenuItem)
		admin.PUT("/menu/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminCtrl.DeleteMenuItem)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PUT("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.GET("/customers", adminCtrl.ListCustomers)
	}
}
