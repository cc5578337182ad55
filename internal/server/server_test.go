package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/oakmere/gatehouse/internal/config"
	"github.com/oakmere/gatehouse/internal/pubsub"
	"github.com/oakmere/gatehouse/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	cfg := &config.Config{
		ListenAddr:    ":0",
		AppBaseURL:    "http://localhost:8080",
		AuthAPIURL:    "http://127.0.0.1:1",
		SessionSecret: "a-very-secret-key-for-testing-!",
	}
	srv := server.New(cfg, authclient.New(cfg.AuthAPIURL), pubsub.NewWatermillBridge())
	srv.RegisterRoutes()
	return srv
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestLoginRouteRendersForm(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestRootRedirectsAnonymousToLogin(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect=/", rec.Header().Get("Location"))
}

func TestWireAudit(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, srv.WireAudit(ctx))
}
