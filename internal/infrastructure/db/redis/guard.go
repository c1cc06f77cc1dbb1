package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// SubmissionGuard suppresses duplicate RSVP submissions for the same invite
// code. The store's status field is the source of truth; the guard only
// narrows the window in which two concurrent submissions could both observe
// a pending invite.
// Key format: rsvp:submitted:<invite_id>
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// IsDuplicate reports whether a submission for this invite was already seen.
func (g *SubmissionGuard) IsDuplicate(ctx context.Context, inviteID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(inviteID)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a submission for this invite has been accepted
// (expires after guardTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, inviteID string) error {
	return g.client.Set(ctx, g.key(inviteID), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(inviteID string) string {
	return "rsvp:submitted:" + inviteID
}
