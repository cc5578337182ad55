package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost)
	s.E.POST("/logout", s.authHandler.Logout)

	s.E.GET("/forgot-password", s.authHandler.ForgotPasswordGet)
	s.E.POST("/forgot-password", s.authHandler.ForgotPasswordPost)

	s.E.GET("/reset-password/:token", s.authHandler.ResetPasswordGet)
	s.E.GET("/reset-password", s.authHandler.ResetPasswordGet)
	s.E.POST("/reset-password", s.authHandler.ResetPasswordPost)
	s.E.POST("/reset-password/strength", s.authHandler.PasswordStrength)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
