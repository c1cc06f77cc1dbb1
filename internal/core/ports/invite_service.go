package ports

import (
	"context"

	"github.com/candles/rsvp-system/internal/core/domain"
)

// RSVPInput is the guest-submitted RSVP payload. Allergies and Remarks are
// pointers so "omitted" and "empty" can be told apart: the allergy flag on
// the invite derives from whether allergies were supplied at all.
type RSVPInput struct {
	Name      string
	Allergies *string
	Remarks   *string
}

// InviteService covers invite allocation and the guest RSVP flow.
type InviteService interface {
	// AllocateCode generates a unique 6-character code for eventID, inserts
	// an empty invite record, and returns the code.
	AllocateCode(ctx context.Context, eventID string) (string, error)
	ListInvites(ctx context.Context, eventID string) ([]domain.Invite, error)
	SubmitRSVP(ctx context.Context, inviteID string, in RSVPInput) error
	// InviteDetails returns the invite record together with its event.
	InviteDetails(ctx context.Context, inviteID string) (*domain.Invite, *domain.Event, error)
}
