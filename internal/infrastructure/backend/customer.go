package backend

import (
	"context"
	"io"
	"net/http"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// CustomerAPI calls the remote customer endpoints. The console has no
// customer screens yet; CA-facing tooling consumes these wrappers.
type CustomerAPI struct {
	client *Client
}

func NewCustomerAPI(client *Client) *CustomerAPI {
	return &CustomerAPI{client: client}
}

type customerListResponse struct {
	Data []domain.Customer `json:"data"`
}

func (a *CustomerAPI) List(ctx context.Context, token string) ([]domain.Customer, error) {
	var resp customerListResponse
	if err := a.client.doJSON(ctx, "customer_list", http.MethodGet, "/customer/view", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *CustomerAPI) Create(ctx context.Context, token string, customer domain.Customer) (*domain.Customer, error) {
	var created domain.Customer
	if err := a.client.doJSON(ctx, "customer_create", http.MethodPost, "/customer/create", token, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *CustomerAPI) Update(ctx context.Context, token, id string, customer domain.Customer) (*domain.Customer, error) {
	var updated domain.Customer
	if err := a.client.doJSON(ctx, "customer_update", http.MethodPut, "/customer/edit/"+id, token, customer, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *CustomerAPI) Delete(ctx context.Context, token, id string) error {
	return a.client.doJSON(ctx, "customer_delete", http.MethodDelete, "/customer/delete/"+id, token, nil, nil)
}

// BulkUpload imports customers from an uploaded file (multipart field "file").
func (a *CustomerAPI) BulkUpload(ctx context.Context, token, filename string, file io.Reader) (*domain.BulkImportResult, error) {
	var result domain.BulkImportResult
	if err := a.client.upload(ctx, "customer_bulk", "/customer/bulk", token, filename, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
