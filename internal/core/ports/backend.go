package ports

import (
	"context"
	"io"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// LoginResult is the backend's login response: a bearer token plus the
// operator profile fields flattened alongside it.
type LoginResult struct {
	Token   string
	Profile domain.Profile
}

// AuthAPI maps the remote auth operations one-to-one onto HTTP calls.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CALogin(ctx context.Context, email, password string) (*LoginResult, error)
}

// CAAccountAPI maps the remote CA account operations. Every call is a direct
// pass-through; the console never caches the results.
type CAAccountAPI interface {
	List(ctx context.Context, token string) ([]domain.CAAccount, error)
	Create(ctx context.Context, token string, input domain.CreateCAInput) (*domain.CAAccount, error)
	Update(ctx context.Context, token, id string, input domain.UpdateCAInput) (*domain.CAAccount, error)
	UpdateStatus(ctx context.Context, token, id, status string) (*domain.CAAccount, error)
	Delete(ctx context.Context, token, id string) error
}

// CustomerAPI maps the remote customer operations, including multipart bulk
// import. No console screen drives these yet.
type CustomerAPI interface {
	List(ctx context.Context, token string) ([]domain.Customer, error)
	Create(ctx context.Context, token string, customer domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, token, id string, customer domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, token, id string) error
	BulkUpload(ctx context.Context, token, filename string, file io.Reader) (*domain.BulkImportResult, error)
}
