// Package forms holds the field validators and the password strength
// classifier shared by the login and password-reset views. Every function
// here is pure: same input, same result, no hidden state.
package forms

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum length accepted when setting a new
// password. Login intentionally has no length rule: legacy passwords
// created under older rules must still be able to sign in.
const MinPasswordLength = 8

// emailPattern accepts local-part@domain.tld: no whitespace, exactly one
// '@', and at least one '.' after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks an email address for the login and forgot-password
// forms.
func ValidateEmail(value string) *FieldError {
	if value == "" {
		return fieldError(CodeEmptyField, "Email is required.")
	}
	if !emailPattern.MatchString(value) {
		return fieldError(CodeInvalidFormat, "Enter a valid email address.")
	}
	return nil
}

// ValidatePassword checks the password field on the login form. Presence
// only; see MinPasswordLength for why.
func ValidatePassword(value string) *FieldError {
	if value == "" {
		return fieldError(CodeEmptyField, "Password is required.")
	}
	return nil
}

// ValidateNewPassword checks a replacement password on the reset form.
// The checks run in a fixed order so the user always sees the most
// fundamental problem first.
func ValidateNewPassword(value string) *FieldError {
	if value == "" {
		return fieldError(CodeEmptyField, "Password is required.")
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return fieldError(CodeTooShort, "Password must be at least 8 characters long.")
	}
	classes := classify(value)
	if !classes.hasLetter {
		return fieldError(CodeMissingLetter, "Password must contain at least one letter.")
	}
	if !classes.hasDigit {
		return fieldError(CodeMissingDigit, "Password must contain at least one digit.")
	}
	return nil
}

// ValidateConfirmPassword checks the confirmation field against the
// primary password. An empty confirmation is not an error yet; it only
// blocks submission through the derived can-submit predicate. Callers must
// re-run this whenever either field changes.
func ValidateConfirmPassword(newPassword, confirmValue string) *FieldError {
	if confirmValue != "" && confirmValue != newPassword {
		return fieldError(CodeMismatch, "Passwords do not match.")
	}
	return nil
}

// charClasses records which character classes appear in a password.
type charClasses struct {
	length     int
	hasLetter  bool
	hasDigit   bool
	hasUpper   bool
	hasSpecial bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		c.length++
		switch {
		case unicode.IsDigit(r):
			c.hasDigit = true
		case unicode.IsLetter(r):
			c.hasLetter = true
			if unicode.IsUpper(r) {
				c.hasUpper = true
			}
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			c.hasSpecial = true
		}
	}
	return c
}
