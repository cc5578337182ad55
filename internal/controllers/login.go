package controllers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/oakmere/gatehouse/internal/forms"
	"github.com/oakmere/gatehouse/internal/nav"
	"github.com/oakmere/gatehouse/internal/pubsub"
	"github.com/oakmere/gatehouse/internal/session"
)

// LoginFieldErrors are the inline errors for the login form.
type LoginFieldErrors struct {
	Email    *forms.FieldError `json:"email,omitempty"`
	Password *forms.FieldError `json:"password,omitempty"`
}

// LoginState is the immutable snapshot of the login form. Rendering layers
// consume copies of this; they never mutate controller fields.
type LoginState struct {
	Phase        Phase            `json:"phase"`
	Email        string           `json:"email"`
	Password     string           `json:"-"`
	RememberMe   bool             `json:"remember_me"`
	FieldErrors  LoginFieldErrors `json:"field_errors"`
	GeneralError string           `json:"general_error,omitempty"`
	IsSubmitting bool             `json:"is_submitting"`
}

// LoginConfig carries the login controller's collaborators. All services
// are injected; the controller holds no ambient state.
type LoginConfig struct {
	Client    AuthAPI
	Sessions  session.Store
	Navigator nav.Navigator
	Publisher pubsub.Publisher
	// RedirectParam is the explicit `redirect` query parameter, if any.
	RedirectParam string
	// CameFrom is the upstream-supplied prior location, if any.
	CameFrom string
}

// Login manages email/password capture, inline validation, the
// submit-to-authenticate flow, and redirect-after-success.
type Login struct {
	mu    sync.Mutex
	state LoginState

	client     AuthAPI
	sessions   session.Store
	nav        nav.Navigator
	pub        pubsub.Publisher
	target     string
	redirected bool
}

// NewLogin mounts the login controller. If the session store already
// reports an authenticated session it redirects immediately; the form is
// never shown to an authenticated user.
func NewLogin(cfg LoginConfig) *Login {
	c := &Login{
		state:    LoginState{Phase: PhaseIdle},
		client:   cfg.Client,
		sessions: cfg.Sessions,
		nav:      cfg.Navigator,
		pub:      cfg.Publisher,
		target:   nav.ResolveLoginTarget(cfg.RedirectParam, cfg.CameFrom),
	}

	if c.sessions != nil && c.sessions.IsAuthenticated() {
		c.state.Phase = PhaseSuccess
		c.redirected = true
		c.publish(context.Background())
		if c.nav != nil {
			c.nav.Replace(c.target)
		}
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Login) Snapshot() LoginState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Redirected reports whether the controller already navigated away, either
// through the mount auto-redirect or a successful submit.
func (c *Login) Redirected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.redirected
}

// SetEmail handles an input-change on the email field. Changing the value
// clears its inline error; typing is never blocked.
func (c *Login) SetEmail(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.Email = value
	c.state.FieldErrors.Email = nil
}

// SetPassword handles an input-change on the password field.
func (c *Login) SetPassword(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.Password = value
	c.state.FieldErrors.Password = nil
}

// SetRememberMe handles the remember-me checkbox.
func (c *Login) SetRememberMe(value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.IsSubmitting {
		return
	}
	c.state.RememberMe = value
}

// BlurEmail runs inline validation when the email field loses focus.
func (c *Login) BlurEmail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.FieldErrors.Email = forms.ValidateEmail(c.state.Email)
}

// BlurPassword runs inline validation when the password field loses focus.
func (c *Login) BlurPassword() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.FieldErrors.Password = forms.ValidatePassword(c.state.Password)
}

// Submit runs the full validate-then-authenticate flow. It is a no-op
// while a submission is already in flight; the submitting flag is the
// mutual-exclusion guard.
func (c *Login) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.state.IsSubmitting {
		c.mu.Unlock()
		return
	}

	c.state.Phase = PhaseValidating
	c.state.GeneralError = ""
	c.publish(ctx)

	c.state.FieldErrors.Email = forms.ValidateEmail(c.state.Email)
	c.state.FieldErrors.Password = forms.ValidatePassword(c.state.Password)
	if c.state.FieldErrors.Email != nil || c.state.FieldErrors.Password != nil {
		// Field errors block submission; no network call is issued.
		c.state.Phase = PhaseIdle
		c.publish(ctx)
		c.mu.Unlock()
		return
	}

	c.state.Phase = PhaseSubmitting
	c.state.IsSubmitting = true
	c.publish(ctx)
	email, password, remember := c.state.Email, c.state.Password, c.state.RememberMe
	c.mu.Unlock()

	// Exactly one call in flight; the lock is released while we wait.
	result, err := c.client.Login(ctx, email, password, remember)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsSubmitting = false

	if err != nil {
		slog.Warn("Login attempt failed", "email", email, "error", err)
		c.state.GeneralError = generalErrorMessage(err)
		// Never retain a rejected password.
		c.state.Password = ""
		c.state.Phase = PhaseIdle
		c.publish(ctx)
		return
	}

	if err := c.sessions.SetSession(sessionRecord(result)); err != nil {
		slog.Error("Failed to persist session", "error", err)
		c.state.GeneralError = MsgUnknown
		c.state.Password = ""
		c.state.Phase = PhaseIdle
		c.publish(ctx)
		return
	}

	c.state.Phase = PhaseSuccess
	c.state.Password = ""
	c.publish(ctx)
	c.redirected = true
	c.nav.Replace(c.target)
}

// publish must be called with the lock held.
func (c *Login) publish(ctx context.Context) {
	publishSnapshot(ctx, c.pub, TopicLoginState, "login", c.state.Phase, c.state)
}

// sessionRecord maps the API login payload onto the session record.
func sessionRecord(res authclient.LoginResult) session.Record {
	return session.Record{
		UserID:        res.User.ID,
		Email:         res.User.Email,
		FullName:      res.User.FullName,
		Phone:         res.User.Phone,
		AvatarURL:     res.User.AvatarURL,
		Verified:      res.User.Verified,
		CreatedAt:     res.User.CreatedAt,
		AuthToken:     res.AuthToken,
		Authenticated: true,
	}
}
