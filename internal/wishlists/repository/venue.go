package repository

import (
	"context"
	"errors"
	"fmt"

	wishlisterrors "venuehub/internal/wishlists/errors"
	"venuehub/pkg/config"
	mongotx "venuehub/pkg/db/mongo"
	"venuehub/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VenueCollectionName is owned by the venues service; wishlists only read it.
const VenueCollectionName = "Venues"

type VenueReader interface {
	FindByID(ctx context.Context, id string) (*model.Venue, error)
}

type mongoVenueReader struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoVenueReader(cfg *config.Config) VenueReader {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoVenueReader{
		cfg:        cfg,
		collection: db.Collection(VenueCollectionName),
	}
}

func (r *mongoVenueReader) FindByID(ctx context.Context, id string) (*model.Venue, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"reviews": 0})

	var v model.Venue
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", wishlisterrors.ErrVenueNotFound, id)
		}
		return nil, fmt.Errorf("failed to find venue: %w", err)
	}
	return &v, nil
}
