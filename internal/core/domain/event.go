package domain

import "errors"

var ErrEventNotFound = errors.New("event not found")

// Event is a gathering owned by a domain. Guests never address events
// directly; they reach them through an invite code.
type Event struct {
	ID          string `json:"id" bson:"_id"`
	Domain      string `json:"domain" bson:"domain"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Venue       string `json:"venue,omitempty" bson:"venue,omitempty"`
	StartsAtMs  int64  `json:"starts_at" bson:"starts_at"`
}
