package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// The DTO tags guard transport-level shape only (length caps). Field
// semantics like format and character rules belong to the controllers so
// inline errors stay consistent across views.

// LoginRequest is the DTO for POST /login.
type LoginRequest struct {
	Email      string `form:"email" validate:"max=254"`
	Password   string `form:"password" validate:"max=128"`
	RememberMe bool   `form:"remember_me"`
	Redirect   string `form:"redirect" validate:"max=2048"`
}

// ForgotPasswordRequest is the DTO for POST /forgot-password.
type ForgotPasswordRequest struct {
	Email string `form:"email" validate:"max=254"`
}

// ResetPasswordRequest is the DTO for POST /reset-password.
type ResetPasswordRequest struct {
	Token           string `form:"reset_token" validate:"max=512"`
	NewPassword     string `form:"new_password" validate:"max=128"`
	ConfirmPassword string `form:"confirm_password" validate:"max=128"`
}

// StrengthRequest is the DTO for the htmx strength-meter fragment.
type StrengthRequest struct {
	Password string `form:"new_password" validate:"max=128"`
}
