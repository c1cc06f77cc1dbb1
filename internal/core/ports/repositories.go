package ports

import (
	"context"

	"github.com/candles/rsvp-system/internal/core/domain"
)

// DomainRepository reads stored tenant credentials.
type DomainRepository interface {
	FindByID(ctx context.Context, domainID string) (*domain.DomainCredential, error)
}

// InviteRepository persists invite records and their RSVP state.
type InviteRepository interface {
	FindByID(ctx context.Context, inviteID string) (*domain.Invite, error)
	// ListByEvent returns the event's invites ordered newest-created first.
	ListByEvent(ctx context.Context, eventID string) ([]domain.Invite, error)
	Create(ctx context.Context, invite *domain.Invite) error
	// ApplyRSVP populates the guest fields and flips the invite to accepted.
	ApplyRSVP(ctx context.Context, inviteID string, rsvp domain.RSVP) error
}

// EventRepository reads event records.
type EventRepository interface {
	FindByID(ctx context.Context, eventID string) (*domain.Event, error)
}
