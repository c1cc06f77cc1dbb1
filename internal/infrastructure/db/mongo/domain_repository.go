package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/candles/rsvp-system/internal/core/domain"
)

const collectionDomains = "domains"

// DomainRepository reads tenant credentials from the domains collection.
type DomainRepository struct {
	col *mongo.Collection
}

func NewDomainRepository(db *mongo.Database) *DomainRepository {
	return &DomainRepository{col: db.Collection(collectionDomains)}
}

// FindByID retrieves the stored credential for a (lower-cased) domain id.
func (r *DomainRepository) FindByID(ctx context.Context, domainID string) (*domain.DomainCredential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cred domain.DomainCredential
	if err := r.col.FindOne(ctx, bson.M{"_id": domainID}).Decode(&cred); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDomainNotFound
		}
		return nil, fmt.Errorf("find domain: %w", err)
	}
	return &cred, nil
}
