package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/identity"
)

func runAttach(t *testing.T, m *identity.Manager, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(m)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestSession_AttachesFreshSession(t *testing.T) {
	m := newTestManager()

	rec := runAttach(t, m, "")

	values := rec.Header().Values("Set-Cookie")
	if len(values) != 1 {
		t.Fatalf("expected exactly 1 Set-Cookie, got %d: %v", len(values), values)
	}

	// the issued cookie must decode to an unauthenticated session
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", values[0])
	s := m.Current(req)
	if s == nil {
		t.Fatalf("issued cookie does not verify")
	}
	if s.Authenticated {
		t.Fatalf("fresh session is authenticated")
	}
}

func TestSession_KeepsExistingSession(t *testing.T) {
	m := newTestManager()
	cookie := cookieFor(t, m, &domain.Session{
		SID:       "keep-me",
		ExpiresAt: time.Now().UTC().Add(domain.SessionTTL).UnixMilli(),
	})

	rec := runAttach(t, m, cookie)
	if values := rec.Header().Values("Set-Cookie"); len(values) != 0 {
		t.Fatalf("session rewritten for a request that already carried one: %v", values)
	}
}

func TestSession_ReplacesGarbageCookie(t *testing.T) {
	m := newTestManager()

	rec := runAttach(t, m, "candles_session=tampered")
	if values := rec.Header().Values("Set-Cookie"); len(values) != 1 {
		t.Fatalf("expected a fresh session for an unverifiable cookie, got %v", values)
	}
}
