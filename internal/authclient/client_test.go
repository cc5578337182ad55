package authclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oakmere/gatehouse/internal/authclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("sends credentials and decodes the session payload", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"user": {"id": "u-1", "email": "a@b.com", "full_name": "Ada B", "verified": true},
				"auth_token": "tok-123"
			}`))
		}))
		defer srv.Close()

		client := authclient.New(srv.URL)
		result, err := client.Login(context.Background(), "a@b.com", "secret1x", true)
		require.NoError(t, err)

		assert.Equal(t, "a@b.com", gotBody["email"])
		assert.Equal(t, "secret1x", gotBody["password"])
		assert.Equal(t, true, gotBody["remember_me"])
		assert.Equal(t, "u-1", result.User.ID)
		assert.Equal(t, "tok-123", result.AuthToken)
	})

	t.Run("classifies 401 as invalid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"no such account"}`, http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := authclient.New(srv.URL).Login(context.Background(), "a@b.com", "x", false)
		// The server-side reason must be discarded: the caller only ever
		// learns "invalid credentials".
		assert.ErrorIs(t, err, authclient.ErrInvalidCredentials)
	})

	t.Run("classifies a dead endpoint as unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse all connections

		_, err := authclient.New(srv.URL).Login(context.Background(), "a@b.com", "x", false)
		assert.ErrorIs(t, err, authclient.ErrUnreachable)
	})

	t.Run("surfaces the server message on other failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"account locked, contact support"}`))
		}))
		defer srv.Close()

		_, err := authclient.New(srv.URL).Login(context.Background(), "a@b.com", "x", false)
		var apiErr *authclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "account locked, contact support", apiErr.Message)
	})
}

func TestCompleteReset(t *testing.T) {
	t.Run("posts the token and new password", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/reset/complete", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := authclient.New(srv.URL).CompleteReset(context.Background(), "tok-9", "Abcdefg1")
		require.NoError(t, err)
		assert.Equal(t, "tok-9", gotBody["reset_token"])
		assert.Equal(t, "Abcdefg1", gotBody["new_password"])
	})

	t.Run("returns the API error for a rejected token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
			_, _ = w.Write([]byte(`{"error":"reset token expired"}`))
		}))
		defer srv.Close()

		err := authclient.New(srv.URL).CompleteReset(context.Background(), "tok-9", "Abcdefg1")
		var apiErr *authclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusGone, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "expired")
	})
}

func TestRequestReset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/reset/request", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	assert.NoError(t, authclient.New(srv.URL).RequestReset(context.Background(), "a@b.com"))
}

func TestDrainMessageFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	err := authclient.New(srv.URL).RequestReset(context.Background(), "a@b.com")
	var apiErr *authclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream exploded", apiErr.Message)
}
