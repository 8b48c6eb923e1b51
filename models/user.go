package models

// Role classifies a user's capabilities.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// GuestUserID marks orders placed without a logged-in account.
const GuestUserID = -1

// User represents an account. Credentials are kept separately in the
// passwords collection, never on the user record itself.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
