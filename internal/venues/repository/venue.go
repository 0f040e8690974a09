package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	venueserrors "venuehub/internal/venues/errors"
	"venuehub/pkg/config"
	mongotx "venuehub/pkg/db/mongo"
	"venuehub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Venues"
)

type VenueRepository interface {
	FindByID(ctx context.Context, id string) (*model.Venue, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Venue, error)
	FindFeatured(ctx context.Context) ([]*model.Venue, error)
	List(ctx context.Context) ([]*model.Venue, error)
	Count(ctx context.Context) (int64, error)

	// AddRating folds one review rating into the venue's average and count.
	AddRating(ctx context.Context, id string, rating int) error
	Upsert(ctx context.Context, v *model.Venue) error

	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoVenueRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoVenueRepository(cfg *config.Config) VenueRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoVenueRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// Catalog order is the order venues were seeded in.
var catalogSort = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (r *mongoVenueRepository) FindByID(ctx context.Context, id string) (*model.Venue, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var v model.Venue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", venueserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find venue: %w", err)
	}
	return &v, nil
}

func (r *mongoVenueRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Venue, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(offset).
		SetSort(catalogSort)

	return r.find(ctx, bson.M{}, opts)
}

func (r *mongoVenueRepository) FindFeatured(ctx context.Context) ([]*model.Venue, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"featured": true}, options.Find().SetSort(catalogSort))
}

// List returns the whole catalog. The search predicate runs over it in memory.
func (r *mongoVenueRepository) List(ctx context.Context) ([]*model.Venue, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.find(ctx, bson.M{}, options.Find().SetSort(catalogSort))
}

func (r *mongoVenueRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Venue, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer cursor.Close(ctx)

	venues := []*model.Venue{}
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, fmt.Errorf("failed to decode venues: %w", err)
	}
	return venues, nil
}

func (r *mongoVenueRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}

func (r *mongoVenueRepository) AddRating(ctx context.Context, id string, rating int) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	v, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count := v.ReviewCount + 1
	average := (v.Rating*float64(v.ReviewCount) + float64(rating)) / float64(count)

	update := bson.M{
		"$set": bson.M{
			"rating":       math.Round(average*10) / 10,
			"review_count": count,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update venue rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", venueserrors.ErrNotFound, id)
	}
	return nil
}

// Upsert writes a catalog venue, keeping the creation time of an existing row.
// A zero CreatedAt is stamped with the current time on insert.
func (r *mongoVenueRepository) Upsert(ctx context.Context, v *model.Venue) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	fields, err := bson.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode venue %s: %w", v.ID, err)
	}
	var set bson.M
	if err := bson.Unmarshal(fields, &set); err != nil {
		return fmt.Errorf("failed to encode venue %s: %w", v.ID, err)
	}
	delete(set, "_id")
	delete(set, "created_at")

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": createdAt.Truncate(time.Millisecond)},
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": v.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert venue %s: %w", v.ID, err)
	}
	return nil
}

func (r *mongoVenueRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
