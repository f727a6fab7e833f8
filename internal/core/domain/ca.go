package domain

import "errors"

// CA account statuses as the backend reports them.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var ErrCANotFound = errors.New("ca account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// CAAccount is a Certificate Authority operator record. The canonical copy
// lives on the remote backend; instances held here are refetched snapshots.
// The password is write-only and never present on reads.
type CAAccount struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// ToggleStatus returns the inverse of the given status. Anything that is not
// "active" toggles to active, matching the backend's two-state model.
func ToggleStatus(status string) string {
	if status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// CreateCAInput is the payload for creating a CA account. Password is
// mandatory here; the separate update type makes the write-only-optional
// password rule explicit instead of stripping fields conditionally.
type CreateCAInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateCAInput is the payload for editing a CA account. An empty Password
// means "leave unchanged" and is omitted from the wire payload entirely, so
// the backend is never asked to set an empty password.
type UpdateCAInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
