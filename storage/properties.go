package storage

import (
	"context"
	"errors"

	"github.com/dcode-github/estate-envision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type PropertyStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewPropertyStore(coll *mongo.Collection, logger *zap.Logger) *PropertyStore {
	return &PropertyStore{coll: coll, logger: logger}
}

func (s *PropertyStore) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.PropertyDocument, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeEach[models.PropertyDocument](ctx, cursor, s.logger)
}

// FindByID returns nil, nil when the property does not exist.
func (s *PropertyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyDocument, error) {
	var doc models.PropertyDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByIDs returns the properties that still exist, in no particular order.
func (s *PropertyStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.PropertyDocument, error) {
	if len(ids) == 0 {
		return []models.PropertyDocument{}, nil
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}
