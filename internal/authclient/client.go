// Package authclient is the HTTP client for the remote authentication API.
// It owns transport mechanics and error classification; the controllers
// only ever see the sentinel errors and *APIError defined here.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout  = 8 * time.Second
	requestIDHeader = "X-Request-ID"

	loginPath          = "/auth/login"
	resetRequestPath   = "/auth/reset/request"
	resetCompletePath  = "/auth/reset/complete"
	maxErrorBodyLength = 512
)

// ErrInvalidCredentials is returned for a 401 from the login endpoint. The
// API deliberately does not distinguish "unknown email" from "wrong
// password", and neither do we.
var ErrInvalidCredentials = errors.New("authclient: invalid credentials")

// ErrUnreachable is returned when the API could not be reached at all
// (connection refused, DNS failure, timeout).
var ErrUnreachable = errors.New("authclient: auth service unreachable")

// APIError carries a non-2xx response the server attached a message to.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("authclient: api error %d: %s", e.StatusCode, e.Message)
}

// User mirrors the authenticated-user payload returned by the API.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	User      User   `json:"user"`
	AuthToken string `json:"auth_token"`
}

// Client issues calls against the authentication API service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Login exchanges credentials for a user record and auth token.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (LoginResult, error) {
	body := map[string]any{
		"email":       email,
		"password":    password,
		"remember_me": rememberMe,
	}

	var result LoginResult
	if err := c.post(ctx, loginPath, body, &result); err != nil {
		// On this endpoint a 401 means the credentials were rejected. The
		// server-side reason is discarded on purpose.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	return result, nil
}

// RequestReset asks the API to issue a reset token for the given email.
// The API responds with 2xx whether or not the account exists.
func (c *Client) RequestReset(ctx context.Context, email string) error {
	return c.post(ctx, resetRequestPath, map[string]any{"email": email}, nil)
}

// CompleteReset redeems a reset token for a new password. Token validity is
// only ever established here; there is no separate validation endpoint.
func (c *Client) CompleteReset(ctx context.Context, token, newPassword string) error {
	body := map[string]any{
		"reset_token":  token,
		"new_password": newPassword,
	}
	return c.post(ctx, resetCompletePath, body, nil)
}

// post issues a JSON POST and decodes the response into out when non-nil.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport-level failure: the service never answered.
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: drainMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("authclient: decoding response: %w", err)
	}
	return nil
}

// drainMessage extracts the server-supplied message from an error body. It
// understands the API's {"error": "..."} envelope and falls back to the
// raw (truncated) body.
func drainMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBodyLength))
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
