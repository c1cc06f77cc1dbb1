package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/candles/rsvp-system/internal/core/domain"
)

func newTestManager() *Manager {
	return NewManager(NewCodec("secret"), "candles_session", "", false)
}

func requestWithCookie(t *testing.T, m *Manager, s *domain.Session) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := m.Persist(rec, s); err != nil {
		t.Fatalf("persist: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", rec.Header().Get("Set-Cookie"))
	return req
}

func TestManager_CurrentAbsentWithoutCookie(t *testing.T) {
	m := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if s := m.Current(req); s != nil {
		t.Fatalf("expected no session, got %+v", s)
	}
}

func TestManager_CurrentAbsentOnGarbageCookie(t *testing.T) {
	m := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "candles_session=garbage")

	if s := m.Current(req); s != nil {
		t.Fatalf("expected no session for unverifiable cookie, got %+v", s)
	}
}

func TestManager_EnsureMintsUnauthenticated(t *testing.T) {
	m := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	before := time.Now().UTC()
	s := m.Ensure(req)
	if s == nil {
		t.Fatalf("expected a session")
	}
	if s.Authenticated {
		t.Fatalf("fresh session is authenticated")
	}
	if s.Domain != "" {
		t.Fatalf("fresh session carries a domain: %q", s.Domain)
	}
	if s.SID == "" {
		t.Fatalf("fresh session has empty sid")
	}

	wantExpiry := before.Add(domain.SessionTTL).UnixMilli()
	if diff := s.ExpiresAt - wantExpiry; diff < 0 || diff > int64(time.Minute/time.Millisecond) {
		t.Fatalf("expiry %d not ~7 days out (want ≈%d)", s.ExpiresAt, wantExpiry)
	}
}

func TestManager_EnsureMintsDistinctSIDs(t *testing.T) {
	m := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	a := m.Ensure(req)
	b := m.Ensure(req)
	if a.SID == b.SID {
		t.Fatalf("two minted sessions share sid %q", a.SID)
	}
}

func TestManager_PersistRoundTrip(t *testing.T) {
	m := newTestManager()
	want := &domain.Session{
		SID:           "sid-1",
		Domain:        "jayden",
		Authenticated: true,
		ExpiresAt:     time.Now().UTC().Add(domain.SessionTTL).UnixMilli(),
	}

	req := requestWithCookie(t, m, want)
	got := m.Current(req)
	if got == nil {
		t.Fatalf("persisted session did not round trip")
	}
	if *got != *want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestManager_EnsureReturnsExistingSession(t *testing.T) {
	m := newTestManager()
	want := &domain.Session{
		SID:       "sid-existing",
		ExpiresAt: time.Now().UTC().Add(domain.SessionTTL).UnixMilli(),
	}

	req := requestWithCookie(t, m, want)
	got := m.Ensure(req)
	if got.SID != want.SID {
		t.Fatalf("Ensure minted a new session: sid %q, want %q", got.SID, want.SID)
	}
}

func TestManager_IsAdmin(t *testing.T) {
	m := newTestManager()
	expiry := time.Now().UTC().Add(domain.SessionTTL).UnixMilli()

	noCookie := httptest.NewRequest(http.MethodGet, "/", nil)
	if m.IsAdmin(noCookie) {
		t.Fatalf("request without cookie is admin")
	}

	anon := requestWithCookie(t, m, &domain.Session{SID: "s1", ExpiresAt: expiry})
	if m.IsAdmin(anon) {
		t.Fatalf("unauthenticated session is admin")
	}

	admin := requestWithCookie(t, m, &domain.Session{SID: "s2", Domain: "jayden", Authenticated: true, ExpiresAt: expiry})
	if !m.IsAdmin(admin) {
		t.Fatalf("authenticated session is not admin")
	}

	// pure predicate: repeated calls on the same request agree
	if m.IsAdmin(admin) != m.IsAdmin(admin) {
		t.Fatalf("IsAdmin not idempotent")
	}
}
