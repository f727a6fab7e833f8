package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mrdsaas/admin-console/internal/core/domain"
)

// page carries the fields every template expects from the layout.
type page struct {
	Title    string
	Operator *domain.Profile
	Flash    *Flash
}

// newPage builds the shared layout data for a guarded screen, consuming any
// pending flash banner.
func newPage(c echo.Context, title string, sess *domain.Session) page {
	p := page{Title: title, Flash: popFlash(c)}
	if sess != nil {
		p.Operator = &sess.Profile
	}
	return p
}

type loginPage struct {
	page
	Email string
	Error string
}

type caListPage struct {
	page
	Accounts []domain.CAAccount
}

type caFormPage struct {
	page
	Editing bool
	Action  string
	Draft   domain.CADraft
	Errors  domain.FieldErrors
}

type caDeletePage struct {
	page
	Target domain.CAAccount
}
