package backend

import (
	"context"
	"net/http"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// CAAccountAPI calls the remote CA account endpoints.
type CAAccountAPI struct {
	client *Client
}

func NewCAAccountAPI(client *Client) *CAAccountAPI {
	return &CAAccountAPI{client: client}
}

type caListResponse struct {
	Data []domain.CAAccount `json:"data"`
}

func (a *CAAccountAPI) List(ctx context.Context, token string) ([]domain.CAAccount, error) {
	var resp caListResponse
	if err := a.client.doJSON(ctx, "ca_list", http.MethodGet, "/ca/view", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *CAAccountAPI) Create(ctx context.Context, token string, input domain.CreateCAInput) (*domain.CAAccount, error) {
	var created domain.CAAccount
	if err := a.client.doJSON(ctx, "ca_create", http.MethodPost, "/ca/create", token, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *CAAccountAPI) Update(ctx context.Context, token, id string, input domain.UpdateCAInput) (*domain.CAAccount, error) {
	var updated domain.CAAccount
	if err := a.client.doJSON(ctx, "ca_update", http.MethodPut, "/ca/edit/"+id, token, input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

type statusRequest struct {
	Status string `json:"status"`
}

func (a *CAAccountAPI) UpdateStatus(ctx context.Context, token, id, status string) (*domain.CAAccount, error) {
	var updated domain.CAAccount
	err := a.client.doJSON(ctx, "ca_update_status", http.MethodPut, "/ca/update-status/"+id,
		token, statusRequest{Status: status}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *CAAccountAPI) Delete(ctx context.Context, token, id string) error {
	return a.client.doJSON(ctx, "ca_delete", http.MethodDelete, "/ca/delete/"+id, token, nil, nil)
}
