package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrdsaas/admin-console/internal/core/domain"
	"github.com/mrdsaas/admin-console/internal/core/ports"
	"github.com/mrdsaas/admin-console/internal/infrastructure/backend"
)

const caListPath = "/dashboard/ca"

// CAHandler owns the CA account management screens: the table, the
// create/edit forms, the status toggle, and the delete confirmation. The
// displayed list is fetched fresh on every render, so each mutation redirects
// back here and the refetch keeps the console consistent with the backend.
type CAHandler struct {
	manager ports.CAManager
}

func NewCAHandler(manager ports.CAManager) *CAHandler {
	return &CAHandler{manager: manager}
}

// caForm is the transport shape of the create/edit form.
type caForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

func (f caForm) draft() domain.CADraft {
	return domain.CADraft{
		Name:            f.Name,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
	}
}

// List renders the CA table. A fetch failure keeps the page usable: the
// error is surfaced as a banner and the table renders empty.
func (h *CAHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	data := caListPage{page: newPage(c, "CA Management", sess)}
	accounts, err := h.manager.List(c.Request().Context(), sess.Token)
	if err != nil {
		data.Flash = &Flash{Kind: "error", Text: "Failed to load CA accounts"}
	}
	data.Accounts = accounts
	return c.Render(http.StatusOK, "ca_list", data)
}

// NewForm opens the create form with a clean draft.
func (h *CAHandler) NewForm(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "ca_form", caFormPage{
		page:   newPage(c, "Add New CA", sess),
		Action: caListPath + "/new",
	})
}

// Create validates the draft and submits it. Validation failures re-render
// the form with per-field messages and the draft intact; backend failures
// keep the form open with a banner so the operator can retry.
func (h *CAHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form caForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	draft := form.draft()

	data := caFormPage{
		page:   newPage(c, "Add New CA", sess),
		Action: caListPath + "/new",
		Draft:  draft,
	}

	if errs := draft.Validate(false); !errs.Valid() {
		data.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "ca_form", data)
	}

	if _, err := h.manager.Create(c.Request().Context(), sess.Token, draft.CreateInput()); err != nil {
		data.Flash = &Flash{Kind: "error", Text: mutationErrorMessage(err, "Failed to save CA account")}
		return c.Render(http.StatusBadGateway, "ca_form", data)
	}

	setFlash(c, "success", "CA account created")
	return c.Redirect(http.StatusSeeOther, caListPath)
}

// EditForm seeds the draft with the target's name and email. The password
// fields stay blank: the credential is write-only and blank means unchanged.
func (h *CAHandler) EditForm(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	target, err := h.findAccount(c.Request().Context(), sess.Token, c.Param("id"))
	if err != nil {
		setFlash(c, "error", "CA account not found")
		return c.Redirect(http.StatusSeeOther, caListPath)
	}

	return c.Render(http.StatusOK, "ca_form", caFormPage{
		page:    newPage(c, "Edit CA", sess),
		Editing: true,
		Action:  caListPath + "/" + target.ID + "/edit",
		Draft:   domain.CADraft{Name: target.Name, Email: target.Email},
	})
}

// Update validates and submits an edit. A blank password is dropped from the
// payload so the backend is never asked to set an empty credential.
func (h *CAHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	var form caForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	draft := form.draft()

	data := caFormPage{
		page:    newPage(c, "Edit CA", sess),
		Editing: true,
		Action:  caListPath + "/" + id + "/edit",
		Draft:   draft,
	}

	if errs := draft.Validate(true); !errs.Valid() {
		data.Errors = errs
		return c.Render(http.StatusUnprocessableEntity, "ca_form", data)
	}

	if _, err := h.manager.Update(c.Request().Context(), sess.Token, id, draft.UpdateInput()); err != nil {
		data.Flash = &Flash{Kind: "error", Text: mutationErrorMessage(err, "Failed to save CA account")}
		return c.Render(http.StatusBadGateway, "ca_form", data)
	}

	setFlash(c, "success", "CA account updated")
	return c.Redirect(http.StatusSeeOther, caListPath)
}

// ToggleStatus flips the row's status to the inverse of what it currently
// shows and returns to the list either way.
func (h *CAHandler) ToggleStatus(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	current := c.FormValue("status")
	if _, err := h.manager.ToggleStatus(c.Request().Context(), sess.Token, c.Param("id"), current); err != nil {
		setFlash(c, "error", mutationErrorMessage(err, "Failed to update status"))
	}
	return c.Redirect(http.StatusSeeOther, caListPath)
}

// ConfirmDelete shows the confirmation screen. Nothing is mutated until the
// operator confirms.
func (h *CAHandler) ConfirmDelete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	target, err := h.findAccount(c.Request().Context(), sess.Token, c.Param("id"))
	if err != nil {
		setFlash(c, "error", "CA account not found")
		return c.Redirect(http.StatusSeeOther, caListPath)
	}

	return c.Render(http.StatusOK, "ca_confirm_delete", caDeletePage{
		page:   newPage(c, "Confirm Deletion", sess),
		Target: *target,
	})
}

// Delete performs the confirmed deletion. On failure the confirmation screen
// stays up with the same target so the operator can retry or cancel.
func (h *CAHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	if err := h.manager.Delete(c.Request().Context(), sess.Token, id); err != nil {
		target := domain.CAAccount{ID: id}
		if found, findErr := h.findAccount(c.Request().Context(), sess.Token, id); findErr == nil {
			target = *found
		}
		return c.Render(http.StatusBadGateway, "ca_confirm_delete", caDeletePage{
			page: page{
				Title:    "Confirm Deletion",
				Operator: &sess.Profile,
				Flash:    &Flash{Kind: "error", Text: mutationErrorMessage(err, "Failed to delete CA account")},
			},
			Target: target,
		})
	}

	setFlash(c, "success", "CA account deleted")
	return c.Redirect(http.StatusSeeOther, caListPath)
}

// findAccount resolves one account out of the full list; the backend exposes
// no single-record read for CA accounts.
func (h *CAHandler) findAccount(ctx context.Context, token, id string) (*domain.CAAccount, error) {
	accounts, err := h.manager.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, domain.ErrCANotFound
}

// mutationErrorMessage prefers the backend's own message over the generic
// fallback for the operation.
func mutationErrorMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
