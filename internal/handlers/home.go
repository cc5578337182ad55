package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oakmere/gatehouse/internal/session"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/pages"
)

// HomeHandler handles the signed-in landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the landing page (GET /). Anonymous visitors are sent to
// the login form with a redirect back here.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	rec, ok := session.FromEcho(c).Current()
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login?redirect=/")
	}
	return view.RenderOK(c, pages.Home(rec, view.GetFlashData(c)))
}
