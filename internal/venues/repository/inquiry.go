package repository

import (
	"context"
	"fmt"
	"time"

	"venuehub/pkg/config"
	mongotx "venuehub/pkg/db/mongo"
	"venuehub/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	InquiryCollectionName = "Inquiries"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
}

type mongoInquiryRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoInquiryRepository(cfg *config.Config) InquiryRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoInquiryRepository{
		cfg:        cfg,
		collection: db.Collection(InquiryCollectionName),
	}
}

func (r *mongoInquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	inquiry.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	return nil
}
