package backend

import (
	"context"
	"net/http"

	"github.com/mrdsaas/admin-console/internal/core/domain"
	"github.com/mrdsaas/admin-console/internal/core/ports"
)

// AuthAPI calls the remote auth endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the backend's flattened token-plus-profile shape.
type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r loginResponse) result() *ports.LoginResult {
	return &ports.LoginResult{
		Token: r.Token,
		Profile: domain.Profile{
			ID:    r.ID,
			Name:  r.Name,
			Email: r.Email,
			Role:  r.Role,
		},
	}
}

// Login authenticates a platform operator.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.client.doJSON(ctx, "auth_login", http.MethodPost, "/auth/login",
		"", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.result(), nil
}

// CALogin authenticates a CA operator through the CA-specific endpoint.
func (a *AuthAPI) CALogin(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.client.doJSON(ctx, "auth_ca_login", http.MethodPost, "/auth/ca-login",
		"", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.result(), nil
}
