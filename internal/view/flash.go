// Package view holds the glue between handlers and the rendering layer:
// flash messages carried across redirects and the gomponents render helper.
package view

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyEmail    = "form_email"
)

// FlashData carries the one-shot messages retrieved for the next render.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFlashEmail preserves a submitted email for pre-filling the next form
// render after a redirect.
func SetFlashEmail(c echo.Context, email string) {
	setFlash(c, flashKeyEmail, email)
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, _ := session.Get(flashSessionName, c)

	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	for _, f := range successFlashes {
		if s, ok := f.(string); ok {
			data.Success = append(data.Success, s)
		}
	}
	for _, f := range errorFlashes {
		if s, ok := f.(string); ok {
			data.Error = append(data.Error, s)
		}
	}
	// Save to persist the clearing of the consumed flashes.
	_ = sess.Save(c.Request(), c.Response())
	return data
}

// GetFlashEmail retrieves (and clears) a preserved form email.
func GetFlashEmail(c echo.Context) string {
	sess, _ := session.Get(flashSessionName, c)
	flashes := sess.Flashes(flashKeyEmail)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	if s, ok := flashes[0].(string); ok {
		return s
	}
	return ""
}

// Render writes a gomponents node as the HTML response.
func Render(c echo.Context, status int, node gomponents.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return node.Render(c.Response().Writer)
}

// RenderOK writes a gomponents node with a 200 status.
func RenderOK(c echo.Context, node gomponents.Node) error {
	return Render(c, http.StatusOK, node)
}
