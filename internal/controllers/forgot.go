package controllers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// ForgotState is the immutable snapshot of the forgot-password form.
type ForgotState struct {
	Phase        Phase             `json:"phase"`
	Email        string            `json:"email"`
	EmailError   *forms.FieldError `json:"email_error,omitempty"`
	Notice       string            `json:"notice,omitempty"`
	IsSubmitting bool              `json:"is_submitting"`
}

// ForgotConfig carries the forgot-password controller's collaborators.
type ForgotConfig struct {
	Client    AuthAPI
	Publisher pubsub.Publisher
}

// ForgotPassword manages the email-capture form that asks the API to issue
// a reset token. Whatever the API answers, the user sees the same notice:
// the outcome must not reveal whether the account exists.
type ForgotPassword struct {
	mu    sync.Mutex
	state ForgotState

	client AuthAPI
	pub    pubsub.Publisher
}

// NewForgotPassword mounts the forgot-password controller.
func NewForgotPassword(cfg ForgotConfig) *ForgotPassword {
	return &ForgotPassword{
		state:  ForgotState{Phase: PhaseIdle},
		client: cfg.Client,
		pub:    cfg.Publisher,
	}
}

// Snapshot returns a copy of the current state.
func (c *ForgotPassword) Snapshot() ForgotState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetEmail handles an input-change on the email field.
func (c *ForgotPassword) SetEmail(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.Email = value
	c.state.EmailError = nil
}

// Submit validates the email and asks the API for a reset token. Failures
// from the API are logged and hidden behind the fixed notice.
func (c *ForgotPassword) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.state.IsSubmitting {
		c.mu.Unlock()
		return
	}

	c.state.Phase = PhaseValidating
	c.publish(ctx)
	c.state.EmailError = forms.ValidateEmail(c.state.Email)
	if c.state.EmailError != nil {
		c.state.Phase = PhaseIdle
		c.publish(ctx)
		c.mu.Unlock()
		return
	}

	c.state.Phase = PhaseSubmitting
	c.state.IsSubmitting = true
	c.publish(ctx)
	email := c.state.Email
	c.mu.Unlock()

	err := c.client.RequestReset(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsSubmitting = false
	if err != nil {
		// Hidden from the user to prevent account enumeration.
		slog.Info("Reset request failed, hiding from user", "email", email, "error", err)
	}
	c.state.Phase = PhaseSuccess
	c.state.Notice = MsgResetRequested
	c.publish(ctx)
}

// publish must be called with the lock held.
func (c *ForgotPassword) publish(ctx context.Context) {
	publishSnapshot(ctx, c.pub, TopicForgotState, "forgot", c.state.Phase, c.state)
}
