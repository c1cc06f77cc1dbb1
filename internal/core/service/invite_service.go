package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/candles/rsvp-system/internal/api/metrics"
	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/core/ports"
)

const (
	// codeAttempts bounds the collision-retry loop. With a 24-bit code space
	// the ceiling is effectively unreachable, but it is modeled rather than
	// assumed away.
	codeAttempts = 100
	codeBytes    = 3
)

// SubmissionGuard abstracts the duplicate-submit suppressor (Redis). Guard
// failures degrade to store-only checking, never block a submission.
type SubmissionGuard interface {
	IsDuplicate(ctx context.Context, inviteID string) (bool, error)
	Mark(ctx context.Context, inviteID string) error
}

// InviteService implements invite code allocation and the guest RSVP flow.
type InviteService struct {
	invites ports.InviteRepository
	events  ports.EventRepository
	guard   SubmissionGuard
	logger  zerolog.Logger
}

func NewInviteService(
	invites ports.InviteRepository,
	events ports.EventRepository,
	guard SubmissionGuard,
	logger zerolog.Logger,
) *InviteService {
	return &InviteService{invites: invites, events: events, guard: guard, logger: logger}
}

// AllocateCode generates a candidate code, checks the store for a collision,
// and inserts a fresh pending invite. Collisions retry up to codeAttempts;
// exhausting the ceiling returns ErrCodeSpaceExhausted without inserting.
func (s *InviteService) AllocateCode(ctx context.Context, eventID string) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := randomCode()

		_, err := s.invites.FindByID(ctx, code)
		switch {
		case errors.Is(err, domain.ErrInviteNotFound):
			invite := &domain.Invite{
				ID:          code,
				EventID:     eventID,
				Status:      domain.InviteStatusPending,
				CreatedAtMs: time.Now().UTC().UnixMilli(),
			}
			if err := s.invites.Create(ctx, invite); err != nil {
				return "", fmt.Errorf("create invite: %w", err)
			}
			metrics.InviteCodesAllocatedTotal.Inc()
			s.logger.Info().Str("code", code).Str("event_id", eventID).Msg("invite code allocated")
			return code, nil

		case err == nil:
			metrics.InviteCodeCollisionsTotal.Inc()
			s.logger.Debug().Str("code", code).Int("attempt", i).Msg("invite code collision")

		default:
			return "", fmt.Errorf("collision check: %w", err)
		}
	}
	return "", domain.ErrCodeSpaceExhausted
}

// ListInvites returns the event's invites, newest-created first.
func (s *InviteService) ListInvites(ctx context.Context, eventID string) ([]domain.Invite, error) {
	return s.invites.ListByEvent(ctx, eventID)
}

// SubmitRSVP applies a guest response to a pending invite. An invite accepts
// exactly one response: already-accepted invites are rejected, and the guard
// narrows the window for two concurrent submissions against the same code.
func (s *InviteService) SubmitRSVP(ctx context.Context, inviteID string, in ports.RSVPInput) error {
	invite, err := s.invites.FindByID(ctx, inviteID)
	if err != nil {
		return err
	}
	if invite.Status == domain.InviteStatusAccepted {
		return domain.ErrInviteAlreadyAccepted
	}

	if dup, err := s.guard.IsDuplicate(ctx, inviteID); err != nil {
		s.logger.Warn().Err(err).Str("invite", inviteID).Msg("submission guard check failed, continuing")
	} else if dup {
		return domain.ErrInviteAlreadyAccepted
	}

	rsvp := domain.RSVP{
		Name:         in.Name,
		Allergy:      in.Allergies != nil,
		AcceptedAtMs: time.Now().UTC().UnixMilli(),
	}
	if in.Allergies != nil {
		rsvp.Allergies = *in.Allergies
	}
	if in.Remarks != nil {
		rsvp.Remarks = *in.Remarks
	}

	if err := s.invites.ApplyRSVP(ctx, inviteID, rsvp); err != nil {
		return fmt.Errorf("apply rsvp: %w", err)
	}

	// Mark only after the store write succeeds: a guard entry set before a
	// failed write would reject the guest's retry for the guard's lifetime.
	if err := s.guard.Mark(ctx, inviteID); err != nil {
		s.logger.Warn().Err(err).Str("invite", inviteID).Msg("failed to mark submission")
	}

	metrics.RSVPsSubmittedTotal.Inc()
	s.logger.Info().Str("invite", inviteID).Str("event_id", invite.EventID).Msg("rsvp submitted")
	return nil
}

// InviteDetails returns the invite record together with its event, for
// guests to retrieve details.
func (s *InviteService) InviteDetails(ctx context.Context, inviteID string) (*domain.Invite, *domain.Event, error) {
	invite, err := s.invites.FindByID(ctx, inviteID)
	if err != nil {
		return nil, nil, err
	}
	event, err := s.events.FindByID(ctx, invite.EventID)
	if err != nil {
		return nil, nil, err
	}
	return invite, event, nil
}

// randomCode returns codeBytes random bytes rendered as lowercase hex.
func randomCode() string {
	b := make([]byte, codeBytes)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%06x", time.Now().UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("%x", b)
}
