// Package session defines the authenticated-session store consumed by the
// form controllers. The login flow writes it once on success; both the
// login and reset flows read it to decide auto-redirect and auth gating.
package session

import "time"

// Record is the full authenticated-session record.
type Record struct {
	UserID        string
	Email         string
	FullName      string
	Phone         string
	AvatarURL     string
	Verified      bool
	CreatedAt     time.Time
	AuthToken     string
	Authenticated bool
}

// Store is the contract the controllers depend on. Implementations are
// request-scoped on the web (cookie-backed) and in-memory in tests and
// embeddings.
type Store interface {
	// IsAuthenticated reports whether the store currently holds an
	// authenticated session.
	IsAuthenticated() bool
	// Current returns the stored record, if any.
	Current() (Record, bool)
	// SetSession replaces the stored record.
	SetSession(rec Record) error
	// Clear drops the stored record.
	Clear() error
}
