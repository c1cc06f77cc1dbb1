package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/candles/rsvp-system/internal/core/domain"
)

var errSessionExpired = errors.New("session record expired")

// sessionClaims carries a session record through a signed token, alongside
// the registered issued-at and expiry claims.
type sessionClaims struct {
	SID           string `json:"sid"`
	Domain        string `json:"domain,omitempty"`
	Authenticated bool   `json:"authenticated"`
	ExpiresAt     int64  `json:"expiresAt"`
	jwt.RegisteredClaims
}

// Codec encodes session records to, and decodes them from, signed HS256
// tokens. Tokens carry both a signing window (iat + SessionTTL) and the
// record's own expiry; Decode enforces both.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a Codec signing with the process-wide secret key.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Encode serializes the record as the payload of a signed token. The signing
// window runs SessionTTL from issuance, independent of the record's
// ExpiresAt field.
func (c *Codec) Encode(s *domain.Session) (string, error) {
	now := c.now().UTC()
	claims := sessionClaims{
		SID:           s.SID,
		Domain:        s.Domain,
		Authenticated: s.Authenticated,
		ExpiresAt:     s.ExpiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(domain.SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Decode verifies a token and reconstructs the session record. Acceptance is
// restricted to HS256. Any failure (bad signature, wrong algorithm, expired
// or malformed token) returns an error that callers must treat as "no
// session", never as a server fault.
func (c *Codec) Decode(token string) (*domain.Session, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	s := &domain.Session{
		SID:           claims.SID,
		Domain:        claims.Domain,
		Authenticated: claims.Authenticated,
		ExpiresAt:     claims.ExpiresAt,
	}
	if s.Expired(c.now()) {
		return nil, errSessionExpired
	}
	return s, nil
}
