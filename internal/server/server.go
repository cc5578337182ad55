// Package server assembles the echo application: middleware, session
// store, routes, and the snapshot-bus audit subscriber.
package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oakmere/gatehouse/internal/config"
	"github.com/oakmere/gatehouse/internal/controllers"
	"github.com/oakmere/gatehouse/internal/handlers"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	bus         *pubsub.WatermillBridge
	authHandler *handlers.AuthHandler
	homeHandler *handlers.HomeHandler
}

// New creates a new Server instance around the injected services.
func New(cfg *config.Config, client controllers.AuthAPI, bus *pubsub.WatermillBridge) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = handlers.NewValidator()

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	// Serve static files from the "web/static" directory.
	e.Static("/static", "web/static")

	return &Server{
		E:           e,
		Cfg:         cfg,
		bus:         bus,
		authHandler: handlers.NewAuthHandler(client, bus),
		homeHandler: handlers.NewHomeHandler(),
	}
}
