package controllers

import (
	"net/http"

	"restaurant-backend/middleware"
	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// AuthController handles login, registration, and logout.
type AuthController struct {
	auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// homeFor is where a fresh login lands: admins on the dashboard, customers
// on the menu.
func homeFor(user *models.User) string {
	if user.Role == models.RoleAdmin {
		return middleware.AdminHomePath
	}
	return "/menu"
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := ac.auth.Login(ctx.Request.Context(), req.Username, req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user, "redirect_to": homeFor(user)})
}

// Register handles POST /auth/register. New accounts are always customers.
func (ac *AuthController) Register(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := ac.auth.Register(ctx.Request.Context(), req.Username, req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": user, "redirect_to": homeFor(user)})
}

// Logout handles POST /auth/logout.
func (ac *AuthController) Logout(ctx *gin.Context) {
	ac.auth.Logout(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"redirect_to": middleware.LoginPath})
}

// Me handles GET /auth/me.
func (ac *AuthController) Me(ctx *gin.Context) {
	state, user := ac.auth.Current()
	if state == services.SessionUnknown {
		ctx.Header("Retry-After", "1")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session is still loading"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}
