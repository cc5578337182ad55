package controllers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/nav"
	"github.com/oakmere/gatehouse/internal/pubsub"
)

// redirectCountdownStart is the number of seconds shown on the success view
// before navigating back to the login page.
const redirectCountdownStart = 3

// ResetFieldErrors are the inline errors for the reset form.
type ResetFieldErrors struct {
	NewPassword *forms.FieldError `json:"new_password,omitempty"`
	Confirm     *forms.FieldError `json:"confirm,omitempty"`
}

// ResetState is the immutable snapshot of the password-reset form.
type ResetState struct {
	Phase           Phase  `json:"phase"`
	Token           string `json:"-"`
	NewPassword     string `json:"-"`
	ConfirmPassword string `json:"-"`

	Strength forms.StrengthResult `json:"strength"`
	// TokenValid is tri-state: nil until something establishes validity
	// either way. Presence of a token is treated as optimistically valid;
	// only the completion call can actually reject it.
	TokenValid *bool `json:"token_valid,omitempty"`

	FieldErrors              ResetFieldErrors `json:"field_errors"`
	GeneralError             string           `json:"general_error,omitempty"`
	ResetSucceeded           bool             `json:"reset_succeeded"`
	RedirectCountdownSeconds int              `json:"redirect_countdown_seconds"`
	IsSubmitting             bool             `json:"is_submitting"`
}

// ResetConfig carries the reset controller's collaborators.
type ResetConfig struct {
	Client    AuthAPI
	Navigator nav.Navigator
	Publisher pubsub.Publisher
	// Token is the reset token from the navigation context.
	Token string
	// TickInterval overrides the countdown cadence; zero means one second.
	TickInterval time.Duration
}

// ResetPassword manages reset-token capture, new-password capture with a
// live strength meter, the submit-to-reset flow, and the timed
// post-success redirect.
type ResetPassword struct {
	mu    sync.Mutex
	state ResetState

	client AuthAPI
	nav    nav.Navigator
	pub    pubsub.Publisher
	tick   time.Duration

	countdownStop chan struct{}
	navigated     bool
}

// NewResetPassword mounts the reset controller. An absent token means an
// immediate token-invalid state; no network check is performed because no
// validation endpoint exists — a present token is optimistic until the
// completion call says otherwise.
func NewResetPassword(cfg ResetConfig) *ResetPassword {
	tick := cfg.TickInterval
	if tick == 0 {
		tick = time.Second
	}
	c := &ResetPassword{
		state: ResetState{
			Phase:    PhaseTokenChecking,
			Token:    cfg.Token,
			Strength: forms.Strength(""),
		},
		client: cfg.Client,
		nav:    cfg.Navigator,
		pub:    cfg.Publisher,
		tick:   tick,
	}

	if cfg.Token == "" {
		c.state.Phase = PhaseTokenInvalid
		c.state.TokenValid = boolPtr(false)
		c.state.GeneralError = MsgTokenInvalid
	} else {
		c.state.Phase = PhaseFormReady
		c.state.TokenValid = boolPtr(true)
	}
	c.publish(context.Background())
	return c
}

// Snapshot returns a copy of the current state.
func (c *ResetPassword) Snapshot() ResetState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetNewPassword handles a keystroke on the new-password field. Strength
// and the confirm match are recomputed live; an empty field clears its
// inline error instead of nagging mid-edit.
func (c *ResetPassword) SetNewPassword(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.NewPassword = value
	c.state.Strength = forms.Strength(value)
	if value == "" {
		c.state.FieldErrors.NewPassword = nil
	} else {
		c.state.FieldErrors.NewPassword = forms.ValidateNewPassword(value)
	}
	// The match must be re-checked when the primary changes after the
	// confirmation was already filled.
	c.state.FieldErrors.Confirm = forms.ValidateConfirmPassword(value, c.state.ConfirmPassword)
}

// SetConfirmPassword handles a keystroke on the confirmation field.
func (c *ResetPassword) SetConfirmPassword(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.ConfirmPassword = value
	c.state.FieldErrors.Confirm = forms.ValidateConfirmPassword(c.state.NewPassword, value)
}

// CanSubmit is the derived submit-button predicate: full form validity and
// no submission in flight. It is recomputed from current field values,
// never stored.
func (c *ResetPassword) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *ResetPassword) canSubmitLocked() bool {
	if c.state.IsSubmitting || c.state.Phase == PhaseTokenInvalid || c.state.Phase == PhaseSuccess {
		return false
	}
	if forms.ValidateNewPassword(c.state.NewPassword) != nil {
		return false
	}
	return c.state.ConfirmPassword == c.state.NewPassword && c.state.ConfirmPassword != ""
}

// Submit re-runs the password rules and the equality check, then calls the
// reset-completion endpoint. It is a no-op while a submission is in flight.
func (c *ResetPassword) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.state.IsSubmitting || c.state.Phase == PhaseTokenInvalid || c.state.Phase == PhaseSuccess {
		c.mu.Unlock()
		return
	}

	c.state.GeneralError = ""
	c.state.FieldErrors.NewPassword = forms.ValidateNewPassword(c.state.NewPassword)
	c.state.FieldErrors.Confirm = forms.ValidateConfirmPassword(c.state.NewPassword, c.state.ConfirmPassword)
	if c.state.FieldErrors.Confirm == nil && c.state.ConfirmPassword != c.state.NewPassword {
		// An untouched confirmation field still fails the equality check
		// at submit time.
		c.state.FieldErrors.Confirm = &forms.FieldError{
			Code:    forms.CodeMismatch,
			Message: "Passwords do not match.",
		}
	}
	if c.state.FieldErrors.NewPassword != nil || c.state.FieldErrors.Confirm != nil {
		c.publish(ctx)
		c.mu.Unlock()
		return
	}

	c.state.Phase = PhaseSubmitting
	c.state.IsSubmitting = true
	c.publish(ctx)
	token, password := c.state.Token, c.state.NewPassword
	c.mu.Unlock()

	err := c.client.CompleteReset(ctx, token, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsSubmitting = false

	if err != nil {
		if isTokenRejected(err) {
			slog.Warn("Reset token rejected", "error", err)
			c.state.Phase = PhaseTokenInvalid
			c.state.TokenValid = boolPtr(false)
			c.state.GeneralError = MsgTokenInvalid
		} else {
			slog.Warn("Password reset failed", "error", err)
			c.state.Phase = PhaseFormReady
			c.state.GeneralError = generalErrorMessage(err)
		}
		c.publish(ctx)
		return
	}

	c.state.Phase = PhaseSuccess
	c.state.ResetSucceeded = true
	c.state.TokenValid = boolPtr(true)
	c.state.RedirectCountdownSeconds = redirectCountdownStart
	c.publish(ctx)
	c.startCountdownLocked()
}

// Close tears the controller down, guaranteeing the countdown timer is
// released and no dangling navigation can fire. Safe to call more than
// once and on controllers that never started a countdown.
func (c *ResetPassword) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCountdownLocked()
}

func (c *ResetPassword) startCountdownLocked() {
	c.stopCountdownLocked()
	stop := make(chan struct{})
	c.countdownStop = stop
	go c.runCountdown(stop)
}

func (c *ResetPassword) stopCountdownLocked() {
	if c.countdownStop != nil {
		close(c.countdownStop)
		c.countdownStop = nil
	}
}

// runCountdown decrements once per tick and navigates to the login view
// exactly once when the counter reaches zero.
func (c *ResetPassword) runCountdown(stop chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			// A tick can already be past the select when Close wins the lock
			// race; the stale stop handle detects that teardown happened.
			if c.countdownStop != stop {
				c.mu.Unlock()
				return
			}
			if !c.state.ResetSucceeded || c.state.RedirectCountdownSeconds == 0 {
				c.mu.Unlock()
				return
			}
			c.state.RedirectCountdownSeconds--
			remaining := c.state.RedirectCountdownSeconds
			c.publish(context.Background())
			if remaining > 0 {
				c.mu.Unlock()
				continue
			}
			if !c.navigated && c.nav != nil {
				c.navigated = true
				// Navigating under the lock means Close cannot return while
				// this navigation is still in flight.
				c.nav.Replace(nav.LoginPath)
			}
			c.mu.Unlock()
			return
		}
	}
}

// publish must be called with the lock held.
func (c *ResetPassword) publish(ctx context.Context) {
	publishSnapshot(ctx, c.pub, TopicResetState, "reset", c.state.Phase, c.state)
}

func boolPtr(v bool) *bool {
	return &v
}
