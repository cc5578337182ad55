// Package handlers holds the echo HTTP handlers. Each request builds a
// fresh form controller, feeds it the bound input, and renders the
// resulting snapshot; the controllers never see echo.
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/nav"
	"github.com/oakmere/gatehouse/internal/pubsub"
	"github.com/oakmere/gatehouse/internal/session"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/oakmere/gatehouse/web/src/templates/pages"
)

// AuthHandler handles the login, forgot-password, and reset-password views.
type AuthHandler struct {
	client controllers.AuthAPI
	pub    pubsub.Publisher
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(client controllers.AuthAPI, pub pubsub.Publisher) *AuthHandler {
	return &AuthHandler{client: client, pub: pub}
}

func (h *AuthHandler) loginController(c echo.Context, redirect string) *controllers.Login {
	return controllers.NewLogin(controllers.LoginConfig{
		Client:        h.client,
		Sessions:      session.FromEcho(c),
		Navigator:     nav.FromEcho(c),
		Publisher:     h.pub,
		RedirectParam: redirect,
		CameFrom:      c.Request().Referer(),
	})
}

// LoginGet renders the login page (GET /login). An already-authenticated
// session is redirected straight to its target; the form is never shown.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	redirect := c.QueryParam("redirect")
	ctrl := h.loginController(c, redirect)
	if ctrl.Redirected() {
		return nil
	}

	// A failed POST preserves the submitted email for the next render.
	if email := view.GetFlashEmail(c); email != "" {
		ctrl.SetEmail(email)
	}
	flashes := view.GetFlashData(c)
	return view.RenderOK(c, pages.Login(ctrl.Snapshot(), flashes, redirect))
}

// LoginPost handles the form submission for logging in (POST /login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	ctrl := h.loginController(c, req.Redirect)
	if ctrl.Redirected() {
		return nil
	}

	ctrl.SetEmail(req.Email)
	ctrl.SetPassword(req.Password)
	ctrl.SetRememberMe(req.RememberMe)
	ctrl.Submit(c.Request().Context())

	// On success the navigator has already written the 303.
	if ctrl.Redirected() {
		return nil
	}

	snap := ctrl.Snapshot()
	if snap.GeneralError != "" {
		// Authentication failures go through a redirect so a refresh cannot
		// resubmit the credentials.
		view.SetFlashError(c, snap.GeneralError)
		view.SetFlashEmail(c, req.Email)
		return c.Redirect(http.StatusSeeOther, loginPath(req.Redirect))
	}

	// Field errors render inline on the form itself.
	return view.Render(c, http.StatusUnprocessableEntity, pages.Login(snap, view.GetFlashData(c), req.Redirect))
}

// Logout clears the session (POST /logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.FromEcho(c).Clear(); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}
	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, nav.LoginPath)
}

// ForgotPasswordGet renders the reset-request page (GET /forgot-password).
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: h.client, Publisher: h.pub})
	return view.RenderOK(c, pages.ForgotPassword(ctrl.Snapshot(), view.GetFlashData(c)))
}

// ForgotPasswordPost handles the reset-request submission
// (POST /forgot-password). The rendered notice is identical whether or not
// the account exists.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	ctrl := controllers.NewForgotPassword(controllers.ForgotConfig{Client: h.client, Publisher: h.pub})
	ctrl.SetEmail(req.Email)
	ctrl.Submit(c.Request().Context())

	snap := ctrl.Snapshot()
	status := http.StatusOK
	if snap.EmailError != nil {
		status = http.StatusUnprocessableEntity
	}
	return view.Render(c, status, pages.ForgotPassword(snap, view.GetFlashData(c)))
}

// ResetPasswordGet renders the new-password form (GET /reset-password/:token).
// A bare /reset-password with a token query parameter is accepted too, for
// links generated by older emails.
func (h *AuthHandler) ResetPasswordGet(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		token = c.QueryParam("token")
	}

	ctrl := controllers.NewResetPassword(controllers.ResetConfig{
		Client:    h.client,
		Navigator: nav.FromEcho(c),
		Publisher: h.pub,
		Token:     token,
	})
	defer ctrl.Close()

	return view.RenderOK(c, pages.ResetPassword(ctrl.Snapshot(), view.GetFlashData(c), token))
}

// ResetPasswordPost handles the new-password submission (POST /reset-password).
func (h *AuthHandler) ResetPasswordPost(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	ctrl := controllers.NewResetPassword(controllers.ResetConfig{
		Client:    h.client,
		Navigator: nav.FromEcho(c),
		Publisher: h.pub,
		Token:     req.Token,
	})
	// Teardown stops the server-side countdown; the success page carries a
	// meta refresh so the browser performs the delayed redirect itself.
	defer ctrl.Close()

	ctrl.SetNewPassword(req.NewPassword)
	ctrl.SetConfirmPassword(req.ConfirmPassword)
	ctrl.Submit(c.Request().Context())

	snap := ctrl.Snapshot()
	status := http.StatusOK
	if !snap.ResetSucceeded && (snap.GeneralError != "" || snap.FieldErrors.NewPassword != nil || snap.FieldErrors.Confirm != nil) {
		status = http.StatusUnprocessableEntity
	}
	return view.Render(c, status, pages.ResetPassword(snap, view.GetFlashData(c), req.Token))
}

// PasswordStrength returns the strength-meter fragment for the value the
// user is typing (POST /reset-password/strength, htmx).
func (h *AuthHandler) PasswordStrength(c echo.Context) error {
	var req StrengthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	return view.RenderOK(c, pages.StrengthMeter(forms.Strength(req.Password)))
}

func loginPath(redirect string) string {
	if redirect == "" {
		return nav.LoginPath
	}
	return nav.LoginPath + "?redirect=" + url.QueryEscape(redirect)
}
