package repository

import (
	"context"
	"fmt"
	"time"

	wishlisterrors "venuehub/internal/wishlists/errors"
	"venuehub/pkg/config"
	mongotx "venuehub/pkg/db/mongo"
	"venuehub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Wishlists"
)

type WishlistRepository interface {
	Add(ctx context.Context, item *model.WishlistItem) error
	FindByUser(ctx context.Context, userID string) ([]*model.WishlistItem, error)
	Remove(ctx context.Context, userID, venueID string) error
}

type mongoWishlistRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoWishlistRepository(cfg *config.Config) WishlistRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWishlistRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Add relies on the unique (user_id, venue_id) index to reject a venue that
// is already saved.
func (r *mongoWishlistRepository) Add(ctx context.Context, item *model.WishlistItem) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	item.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", wishlisterrors.ErrAlreadySaved, item.VenueID)
		}
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

// FindByUser returns the user's saved venues, most recently saved first.
func (r *mongoWishlistRepository) FindByUser(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist for user [%s]: %w", userID, err)
	}
	defer cursor.Close(ctx)

	items := []*model.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	return items, nil
}

func (r *mongoWishlistRepository) Remove(ctx context.Context, userID, venueID string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "venue_id": venueID})
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", wishlisterrors.ErrNotFound, venueID)
	}
	return nil
}
