package middleware

import (
	"net/http"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

// Destinations the guard redirects to.
const (
	LoginPath     = "/login"
	AdminHomePath = "/admin/dashboard"
	SiteHomePath  = "/"
)

// AdminFrameKey flags in the gin context that the destination renders
// inside the administrative frame.
const AdminFrameKey = "admin_frame"

type GuardAction int

const (
	// ActionWait: the session is still loading; no redirect decision yet.
	ActionWait GuardAction = iota
	ActionRedirect
	ActionAllow
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Action     GuardAction
	RedirectTo string
	AdminFrame bool
}

// Evaluate decides whether a destination requiring one of the allowed roles
// is reachable for the given session. A role mismatch never produces an
// error page; it redirects to that role's home.
func Evaluate(state services.SessionState, user *models.User, allowed ...models.Role) Decision {
	switch state {
	case services.SessionUnknown:
		return Decision{Action: ActionWait}
	case services.SessionAnonymous:
		return Decision{Action: ActionRedirect, RedirectTo: LoginPath}
	}

	for _, role := range allowed {
		if user != nil && user.Role == role {
			return Decision{Action: ActionAllow, AdminFrame: user.Role == models.RoleAdmin}
		}
	}

	if user != nil && user.Role == models.RoleAdmin {
		return Decision{Action: ActionRedirect, RedirectTo: AdminHomePath}
	}
	return Decision{Action: ActionRedirect, RedirectTo: SiteHomePath}
}

// RequireRoles applies the guard decision to HTTP requests.
func RequireRoles(auth services.AuthService, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, user := auth.Current()

		switch decision := Evaluate(state, user, roles...); decision.Action {
		case ActionWait:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session is still loading"})
		case ActionRedirect:
			c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
			c.Abort()
		default:
			if decision.AdminFrame {
				c.Set(AdminFrameKey, true)
			}
			c.Next()
		}
	}
}

// InAdminFrame reports whether the guard marked this request for the
// administrative frame.
func InAdminFrame(c *gin.Context) bool {
	return c.GetBool(AdminFrameKey)
}
