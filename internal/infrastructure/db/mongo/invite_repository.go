package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/candles/rsvp-system/internal/core/domain"
)

const collectionInvites = "invites"

// InviteRepository persists invite records keyed by their 6-character code.
type InviteRepository struct {
	col *mongo.Collection
}

func NewInviteRepository(db *mongo.Database) *InviteRepository {
	return &InviteRepository{col: db.Collection(collectionInvites)}
}

// FindByID retrieves an invite by its code.
func (r *InviteRepository) FindByID(ctx context.Context, inviteID string) (*domain.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invite
	if err := r.col.FindOne(ctx, bson.M{"_id": inviteID}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, fmt.Errorf("find invite: %w", err)
	}
	return &inv, nil
}

// ListByEvent returns the event's invites, newest-created first.
func (r *InviteRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_on", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer cur.Close(ctx)

	invites := []domain.Invite{}
	if err := cur.All(ctx, &invites); err != nil {
		return nil, fmt.Errorf("decode invites: %w", err)
	}
	return invites, nil
}

// Create inserts a fresh invite record.
func (r *InviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, invite); err != nil {
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// ApplyRSVP populates the guest fields and flips the invite to accepted.
func (r *InviteRepository) ApplyRSVP(ctx context.Context, inviteID string, rsvp domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        rsvp.Name,
		"allergy":     rsvp.Allergy,
		"allergies":   rsvp.Allergies,
		"remarks":     rsvp.Remarks,
		"status":      domain.InviteStatusAccepted,
		"accepted_tz": rsvp.AcceptedAtMs,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": inviteID}, update)
	if err != nil {
		return fmt.Errorf("update invite: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInviteNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the admin listing query.
func (r *InviteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "created_on", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
