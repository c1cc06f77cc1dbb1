package domain

import (
	"errors"
	"regexp"
)

// InviteStatus tracks whether a guest has responded to an invite.
type InviteStatus int

const (
	InviteStatusPending  InviteStatus = 0
	InviteStatusAccepted InviteStatus = 1
)

var ErrInviteNotFound = errors.New("invite not found")
var ErrInviteAlreadyAccepted = errors.New("invite already accepted")
var ErrCodeSpaceExhausted = errors.New("invite code space exhausted")

// invite codes are exactly 6 lowercase hex characters (3 random bytes)
var inviteCodePattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// ValidInviteCode reports whether s has the shape of an invite code. Callers
// reject malformed codes before touching the store.
func ValidInviteCode(s string) bool {
	return inviteCodePattern.MatchString(s)
}

// Invite grants one guest access to one event's RSVP flow. It is created
// empty by an admin action and mutated exactly once by a guest submission.
type Invite struct {
	ID           string       `json:"id" bson:"_id"`
	EventID      string       `json:"event_id" bson:"event_id"`
	Name         string       `json:"name,omitempty" bson:"name,omitempty"`
	Allergy      bool         `json:"allergy" bson:"allergy"`
	Allergies    string       `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Remarks      string       `json:"remarks,omitempty" bson:"remarks,omitempty"`
	Status       InviteStatus `json:"status" bson:"status"`
	AcceptedAtMs int64        `json:"accepted_tz,omitempty" bson:"accepted_tz,omitempty"`
	CreatedAtMs  int64        `json:"created_on" bson:"created_on"`
}

// RSVP is the guest-supplied portion of an invite, applied on submission
// together with the accepted timestamp and status change.
type RSVP struct {
	Name         string
	Allergy      bool
	Allergies    string
	Remarks      string
	AcceptedAtMs int64
}
