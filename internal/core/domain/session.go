package domain

import "errors"

// Roles the console branches on. Other role strings pass through opaquely.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleCAAdmin    = "CAADMIN"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrSessionExpired = errors.New("session expired")

// Profile identifies the logged-in operator as reported by the backend's
// login response.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session pairs the backend-issued bearer token with the operator profile.
// Both live and die together: written on login, destroyed on logout.
type Session struct {
	ID      string
	Token   string
	Profile Profile
}
