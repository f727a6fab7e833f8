package ports

import (
	"context"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// SessionService owns the console's login/logout flow and session lookup.
type SessionService interface {
	// Login exchanges credentials for a session. The returned landing path
	// depends on the operator's role.
	Login(ctx context.Context, email, password string) (sessionID, landing string, err error)
	// Logout destroys the session. It never fails the operator: store errors
	// are logged and swallowed.
	Logout(ctx context.Context, sessionID string)
	// Resolve loads a session and rejects it when the backend-issued token
	// has already expired.
	Resolve(ctx context.Context, sessionID string) (*domain.Session, error)
}

// CAManager mediates the CA account CRUD operations. Mutations do not patch
// any local state; callers refetch the list afterwards, so the console only
// ever displays what the backend last returned.
type CAManager interface {
	List(ctx context.Context, token string) ([]domain.CAAccount, error)
	Create(ctx context.Context, token string, input domain.CreateCAInput) (*domain.CAAccount, error)
	Update(ctx context.Context, token, id string, input domain.UpdateCAInput) (*domain.CAAccount, error)
	ToggleStatus(ctx context.Context, token, id, currentStatus string) (*domain.CAAccount, error)
	Delete(ctx context.Context, token, id string) error
}
