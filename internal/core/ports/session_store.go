package ports

import (
	"context"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// SessionStore persists the token+profile pair for a logged-in operator.
// Both halves share one lifecycle: written together on login, removed
// together on logout.
type SessionStore interface {
	// Put stores the session and returns its generated id.
	Put(ctx context.Context, token string, profile domain.Profile) (string, error)
	// Get returns domain.ErrSessionNotFound when the id does not resolve.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
