package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

// newTestServer records every request and replies with the queued responses.
func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization")}
		if raw, err := io.ReadAll(r.Body); err == nil && len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		seen = append(seen, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestAuthAPI_Login(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK,
		`{"token":"abc","_id":"u1","name":"Admin","email":"admin@mrd.com","role":"SUPERADMIN"}`)
	api := NewAuthAPI(NewClient(srv.URL, time.Second))

	result, err := api.Login(context.Background(), "admin@mrd.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "abc", result.Token)
	assert.Equal(t, "SUPERADMIN", result.Profile.Role)
	assert.Equal(t, "admin@mrd.com", result.Profile.Email)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/auth/login", req.path)
	assert.Empty(t, req.auth, "login must not carry a bearer token")
	assert.Equal(t, "admin@mrd.com", req.body["email"])
	assert.Equal(t, "secret123", req.body["password"])
}

func TestAuthAPI_CALogin(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK,
		`{"token":"def","_id":"u2","name":"CA Op","email":"ca@mrd.com","role":"CAADMIN"}`)
	api := NewAuthAPI(NewClient(srv.URL, time.Second))

	result, err := api.CALogin(context.Background(), "ca@mrd.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "def", result.Token)
	assert.Equal(t, "CAADMIN", result.Profile.Role)

	req := (*seen)[0]
	assert.Equal(t, "/auth/ca-login", req.path)
	assert.Empty(t, req.auth)
}

func TestAuthAPI_Login_ServerMessage(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"message":"Account disabled"}`)
	api := NewAuthAPI(NewClient(srv.URL, time.Second))

	_, err := api.Login(context.Background(), "admin@mrd.com", "secret123")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Account disabled", apiErr.Message)
}

func TestCAAccountAPI_List(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK,
		`{"data":[{"_id":"ca-1","name":"Jane Doe","email":"jane@x.com","status":"active"}]}`)
	api := NewCAAccountAPI(NewClient(srv.URL, time.Second))

	accounts, err := api.List(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, accounts, 1)
	assert.Equal(t, "ca-1", accounts[0].ID)
	assert.Equal(t, domain.StatusActive, accounts[0].Status)

	req := (*seen)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/ca/view", req.path)
	assert.Equal(t, "Bearer tok", req.auth)
}

func TestCAAccountAPI_Create(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusCreated,
		`{"_id":"ca-1","name":"Jane Doe","email":"jane@x.com","status":"active"}`)
	api := NewCAAccountAPI(NewClient(srv.URL, time.Second))

	created, err := api.Create(context.Background(), "tok",
		domain.CreateCAInput{Name: "Jane Doe", Email: "jane@x.com", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, "ca-1", created.ID)

	req := (*seen)[0]
	assert.Equal(t, "/ca/create", req.path)
	assert.Equal(t, "pass1", req.body["password"])
	assert.NotContains(t, req.body, "confirmPassword")
}

func TestCAAccountAPI_Update_BlankPasswordOmitted(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK,
		`{"_id":"ca-1","name":"Jane Doe","email":"jane@x.com","status":"active"}`)
	api := NewCAAccountAPI(NewClient(srv.URL, time.Second))

	_, err := api.Update(context.Background(), "tok", "ca-1",
		domain.UpdateCAInput{Name: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/ca/edit/ca-1", req.path)
	assert.NotContains(t, req.body, "password", "blank password must not round-trip")
}

func TestCAAccountAPI_UpdateStatus(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{"_id":"ca-1","status":"inactive"}`)
	api := NewCAAccountAPI(NewClient(srv.URL, time.Second))

	updated, err := api.UpdateStatus(context.Background(), "tok", "ca-1", domain.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, updated.Status)

	req := (*seen)[0]
	assert.Equal(t, "/ca/update-status/ca-1", req.path)
	assert.Equal(t, "inactive", req.body["status"])
}

func TestCAAccountAPI_Delete(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK, `{"message":"deleted"}`)
	api := NewCAAccountAPI(NewClient(srv.URL, time.Second))

	require.NoError(t, api.Delete(context.Background(), "tok", "ca-1"))

	req := (*seen)[0]
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/ca/delete/ca-1", req.path)
}

func TestCustomerAPI_CRUD(t *testing.T) {
	srv, seen := newTestServer(t, http.StatusOK,
		`{"_id":"cust-1","name":"Jane","email":"jane@x.com"}`)
	api := NewCustomerAPI(NewClient(srv.URL, time.Second))

	created, err := api.Create(context.Background(), "tok",
		domain.Customer{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", created.ID)

	_, err = api.Update(context.Background(), "tok", "cust-1",
		domain.Customer{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	require.NoError(t, api.Delete(context.Background(), "tok", "cust-1"))

	require.Len(t, *seen, 3)
	assert.Equal(t, "/customer/create", (*seen)[0].path)
	assert.Equal(t, http.MethodPut, (*seen)[1].method)
	assert.Equal(t, "/customer/edit/cust-1", (*seen)[1].path)
	assert.Equal(t, http.MethodDelete, (*seen)[2].method)
	assert.Equal(t, "/customer/delete/cust-1", (*seen)[2].path)
}

func TestCustomerAPI_BulkUpload(t *testing.T) {
	var contentType string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imported":2,"failed":0}`))
	}))
	t.Cleanup(srv.Close)

	api := NewCustomerAPI(NewClient(srv.URL, time.Second))
	result, err := api.BulkUpload(context.Background(), "tok", "customers.csv",
		strings.NewReader("name,email\nJane,jane@x.com\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Contains(t, string(body), `filename="customers.csv"`)
	assert.Contains(t, string(body), `name="file"`)
}

func TestClient_TransportError(t *testing.T) {
	api := NewCAAccountAPI(NewClient("http://127.0.0.1:1", 100*time.Millisecond))

	_, err := api.List(context.Background(), "tok")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, strings.Contains(err.Error(), "status"), "transport errors carry no status")
	assert.NotErrorAs(t, err, &apiErr)
}
