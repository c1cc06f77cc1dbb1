package domain

import "time"

// SessionTTL is the fixed validity window for a visitor session. It bounds
// both the record-level expiry stamped at creation and the signing window of
// the transport token.
const SessionTTL = 7 * 24 * time.Hour

// Session is the authentication state for one visitor. It is never persisted
// server-side; it round-trips entirely through the client as a signed token,
// so the record must be fully reconstructible from that token alone.
type Session struct {
	SID           string `json:"sid"`
	Domain        string `json:"domain,omitempty"`
	Authenticated bool   `json:"authenticated"`
	// ExpiresAt is fixed at creation to creation-time + SessionTTL and is
	// not refreshed on later requests or re-authentication.
	ExpiresAt int64 `json:"expiresAt"` // unix epoch UTC, milliseconds
}

// Expired reports whether the record-level expiry has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return now.UnixMilli() >= s.ExpiresAt
}
