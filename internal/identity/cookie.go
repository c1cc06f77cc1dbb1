package identity

import (
	"net/http"
	"strings"
	"time"
)

// ExtractCookie parses a raw Cookie header and returns the value stored
// under name. Pairs are split on the first "=" only, so values that
// themselves contain "=" (signed tokens, base64) survive intact; pairs
// without an "=" are skipped rather than treated as an error.
func ExtractCookie(header, name string) (string, bool) {
	if header == "" {
		return "", false
	}
	for _, pair := range strings.Split(header, ";") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == name {
			return v, true
		}
	}
	return "", false
}

// WriteCookie queues exactly one Set-Cookie header for name. Anything
// already queued on the response is cleared first: a session attached at the
// top of the pipeline and re-issued on login success would otherwise leave
// two cookies for the same name in one response.
func WriteCookie(w http.ResponseWriter, name, value, cookieDomain string, secure bool, expires time.Time) {
	w.Header().Del("Set-Cookie")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cookieDomain,
		Expires:  expires.UTC(),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
