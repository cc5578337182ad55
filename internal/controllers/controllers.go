// Package controllers holds the validation and state-machine logic for the
// authentication views, independent of any rendering layer. Each controller
// owns an immutable state snapshot, mutates it through explicit transition
// methods, and publishes every transition on the snapshot bus.
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// Snapshot topics. One stream per controller.
const (
	TopicLoginState  = "auth.login.state"
	TopicResetState  = "auth.reset.state"
	TopicForgotState = "auth.forgot.state"
)

// Phase is a controller lifecycle state.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseValidating    Phase = "validating"
	PhaseSubmitting    Phase = "submitting"
	PhaseSuccess       Phase = "success"
	PhaseTokenChecking Phase = "token_checking"
	PhaseTokenInvalid  Phase = "token_invalid"
	PhaseFormReady     Phase = "form_ready"
)

// User-facing messages for failures not attributable to a single field.
const (
	// MsgInvalidCredentials is deliberately indistinguishable between an
	// unknown email and a wrong password.
	MsgInvalidCredentials = "Invalid email or password"
	MsgUnreachable        = "Unable to connect. Please check your connection and try again."
	MsgUnknown            = "Something went wrong. Please try again."
	MsgTokenInvalid       = "This password reset link is invalid or has expired. Please request a new one."
	MsgResetRequested     = "If an account with that email exists, a password reset link has been sent."
)

// AuthAPI is the slice of the remote authentication API the controllers
// consume.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (authclient.LoginResult, error)
	RequestReset(ctx context.Context, email string) error
	CompleteReset(ctx context.Context, token, newPassword string) error
}

// generalErrorMessage converts a classified authclient error into the text
// shown above the form.
func generalErrorMessage(err error) string {
	switch {
	case errors.Is(err, authclient.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, authclient.ErrUnreachable):
		return MsgUnreachable
	}
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MsgUnknown
}

// tokenRejectionHints are matched case-insensitively against the server
// message to decide whether a reset failure is a token problem.
var tokenRejectionHints = []string{"token", "expired", "invalid"}

// isTokenRejected reports whether a reset-completion failure should
// reclassify the whole flow as token-invalid. Only 4xx responses qualify:
// a server fault says nothing about the token.
func isTokenRejected(err error) bool {
	var apiErr *authclient.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode < 400 || apiErr.StatusCode >= 500 {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	for _, hint := range tokenRejectionHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// publishSnapshot emits one state snapshot on the bus. A nil publisher
// disables publishing.
func publishSnapshot(ctx context.Context, pub pubsub.Publisher, topic, form string, phase Phase, snapshot any) {
	if pub == nil {
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("Failed to encode state snapshot", "form", form, "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:    topic,
		Form:     form,
		Payload:  payload,
		Metadata: map[string]string{"phase": string(phase)},
	}
	if err := pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish state snapshot", "form", form, "error", err)
	}
}
