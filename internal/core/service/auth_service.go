package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/core/ports"
	"github.com/candles/rsvp-system/internal/identity"
)

// AuthService implements credential verification for domain admins.
type AuthService struct {
	repo   ports.DomainRepository
	hasher *identity.Hasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.DomainRepository, hasher *identity.Hasher, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

// Login fetches the stored credential for domainID and compares the keyed
// hash of the submitted password byte-for-byte against it. The returned
// string is the canonical (lower-cased, trimmed) domain id.
func (s *AuthService) Login(ctx context.Context, domainID, password string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(domainID))

	cred, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// not-found and store failures alike are infrastructure errors here:
		// the caller must not learn whether the domain exists
		return "", err
	}

	if s.hasher.Hash(password) != cred.PasswordHash {
		s.logger.Debug().Str("domain", id).Msg("password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("domain", id).Msg("domain authenticated")
	return id, nil
}
