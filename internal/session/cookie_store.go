package session

import (
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	authSessionName = "auth-session"

	keyUserID        = "user_id"
	keyEmail         = "email"
	keyFullName      = "full_name"
	keyPhone         = "phone"
	keyAvatarURL     = "avatar_url"
	keyVerified      = "verified"
	keyCreatedAt     = "created_at"
	keyAuthToken     = "auth_token"
	keyAuthenticated = "authenticated"
)

// CookieStore is a Store bound to a single request's gorilla session. The
// record is flattened to primitive values so the cookie codec needs no gob
// registration.
type CookieStore struct {
	c echo.Context
}

// FromEcho returns the request-scoped session store. The gorilla cookie
// store itself is installed once as echo middleware at server assembly.
func FromEcho(c echo.Context) *CookieStore {
	return &CookieStore{c: c}
}

// IsAuthenticated implements Store.
func (s *CookieStore) IsAuthenticated() bool {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return false
	}
	authed, ok := sess.Values[keyAuthenticated].(bool)
	return ok && authed
}

// Current implements Store.
func (s *CookieStore) Current() (Record, bool) {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return Record{}, false
	}
	if authed, ok := sess.Values[keyAuthenticated].(bool); !ok || !authed {
		return Record{}, false
	}

	rec := Record{Authenticated: true}
	rec.UserID, _ = sess.Values[keyUserID].(string)
	rec.Email, _ = sess.Values[keyEmail].(string)
	rec.FullName, _ = sess.Values[keyFullName].(string)
	rec.Phone, _ = sess.Values[keyPhone].(string)
	rec.AvatarURL, _ = sess.Values[keyAvatarURL].(string)
	rec.AuthToken, _ = sess.Values[keyAuthToken].(string)
	rec.Verified, _ = sess.Values[keyVerified].(bool)
	if unix, ok := sess.Values[keyCreatedAt].(int64); ok {
		rec.CreatedAt = time.Unix(unix, 0).UTC()
	}
	return rec, true
}

// SetSession implements Store.
func (s *CookieStore) SetSession(rec Record) error {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return err
	}
	sess.Values[keyUserID] = rec.UserID
	sess.Values[keyEmail] = rec.Email
	sess.Values[keyFullName] = rec.FullName
	sess.Values[keyPhone] = rec.Phone
	sess.Values[keyAvatarURL] = rec.AvatarURL
	sess.Values[keyVerified] = rec.Verified
	sess.Values[keyCreatedAt] = rec.CreatedAt.Unix()
	sess.Values[keyAuthToken] = rec.AuthToken
	sess.Values[keyAuthenticated] = rec.Authenticated
	return sess.Save(s.c.Request(), s.c.Response())
}

// Clear implements Store.
func (s *CookieStore) Clear() error {
	sess, err := session.Get(authSessionName, s.c)
	if err != nil {
		return err
	}
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	return sess.Save(s.c.Request(), s.c.Response())
}
