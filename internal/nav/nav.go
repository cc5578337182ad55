// Package nav models the navigation context the form controllers consume:
// a replace-history redirect primitive and the login redirect-target
// resolution rules.
package nav

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// DefaultTarget is where a successful login lands when nothing better is
// known.
const DefaultTarget = "/"

// LoginPath is the login view; the reset flow navigates here after its
// countdown completes.
const LoginPath = "/login"

// Navigator performs a "navigate to path, replace history" primitive. The
// replace semantics matter: a successful login or reset must not leave the
// form in back-history.
type Navigator interface {
	Replace(path string)
}

// EchoNavigator renders Replace as a 303 redirect on the bound request.
type EchoNavigator struct {
	c echo.Context
}

// FromEcho binds a navigator to the current request.
func FromEcho(c echo.Context) *EchoNavigator {
	return &EchoNavigator{c: c}
}

// Replace implements Navigator.
func (n *EchoNavigator) Replace(path string) {
	// 303 forces a GET on the target and drops the form POST from history.
	_ = n.c.Redirect(http.StatusSeeOther, path)
}

// ResolveLoginTarget picks the post-login destination: the explicit
// redirect query parameter wins, then the upstream came-from location,
// then the application root. Only local paths are honored so the login
// form cannot be used as an open redirector.
func ResolveLoginTarget(redirectParam, cameFrom string) string {
	if isLocalPath(redirectParam) {
		return redirectParam
	}
	if isLocalPath(cameFrom) {
		return cameFrom
	}
	return DefaultTarget
}

// isLocalPath accepts absolute paths within this origin. A double slash
// prefix is scheme-relative and would leave the site.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
