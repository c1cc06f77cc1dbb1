package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/candles/rsvp-system/internal/core/domain"
)

const sidRandomBytes = 12

// Manager orchestrates the session lifecycle over the token codec and cookie
// transport. It holds no cross-request state: the signed token carried by
// the client is the only storage of a session record.
type Manager struct {
	codec        *Codec
	cookieName   string
	cookieDomain string
	cookieSecure bool
	now          func() time.Time
}

// NewManager returns a Manager issuing cookies under the configured name,
// domain and Secure attribute.
func NewManager(codec *Codec, cookieName, cookieDomain string, cookieSecure bool) *Manager {
	return &Manager{
		codec:        codec,
		cookieName:   cookieName,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
		now:          time.Now,
	}
}

// Current returns the session carried by the request, or nil when the
// transport cookie is absent or fails verification. Verification failure is
// a normal outcome (fresh visitor, tampered or expired token), never an
// error.
func (m *Manager) Current(r *http.Request) *domain.Session {
	raw, ok := ExtractCookie(r.Header.Get("Cookie"), m.cookieName)
	if !ok {
		return nil
	}
	s, err := m.codec.Decode(raw)
	if err != nil {
		return nil
	}
	return s
}

// Ensure returns the request's session, minting a fresh unauthenticated one
// when none verifies. A freshly minted session is not persisted here; the
// caller writes it exactly once, at the top of the pipeline or on login
// success, to avoid queuing duplicate Set-Cookie headers.
func (m *Manager) Ensure(r *http.Request) *domain.Session {
	if s := m.Current(r); s != nil {
		return s
	}
	return m.mint()
}

// Persist encodes the record and writes it through the cookie transport,
// using the record's own expiry as the cookie expiry.
func (m *Manager) Persist(w http.ResponseWriter, s *domain.Session) error {
	token, err := m.codec.Encode(s)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	WriteCookie(w, m.cookieName, token, m.cookieDomain, m.cookieSecure, time.UnixMilli(s.ExpiresAt))
	return nil
}

// IsAdmin reports whether the request carries a verified authenticated
// session. Pure predicate, safe to call repeatedly within one request.
func (m *Manager) IsAdmin(r *http.Request) bool {
	s := m.Current(r)
	return s != nil && s.Authenticated
}

// mint synthesizes a new unauthenticated session. The sid is random bytes in
// hex concatenated with the creation timestamp in milliseconds, and is never
// regenerated for the life of the session.
func (m *Manager) mint() *domain.Session {
	now := m.now().UTC()
	return &domain.Session{
		SID:       newSID(now),
		ExpiresAt: now.Add(domain.SessionTTL).UnixMilli(),
	}
}

func newSID(now time.Time) string {
	b := make([]byte, sidRandomBytes)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock alone
		return fmt.Sprintf("%024x%d", now.UnixNano(), now.UnixMilli())
	}
	return fmt.Sprintf("%s%d", hex.EncodeToString(b), now.UnixMilli())
}
