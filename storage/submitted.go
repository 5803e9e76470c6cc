package storage

import (
	"context"
	"errors"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type SubmittedStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewSubmittedStore(coll *mongo.Collection, logger *zap.Logger) *SubmittedStore {
	return &SubmittedStore{coll: coll, logger: logger}
}

func (s *SubmittedStore) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	err := s.coll.FindOne(ctx, bson.M{"id": externalID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert writes the record and fills in its id. A clash on the unique "id"
// index returns ErrDuplicate.
func (s *SubmittedStore) Insert(ctx context.Context, rec *models.SubmittedRecord) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, rec)
	return classifyWrite(err)
}

func (s *SubmittedStore) FindByOwner(ctx context.Context, ownerID string) ([]models.SubmittedDocument, error) {
	return s.find(ctx, bson.M{"ownerId": ownerID})
}

func (s *SubmittedStore) FindAll(ctx context.Context) ([]models.SubmittedDocument, error) {
	return s.find(ctx, bson.M{})
}

func (s *SubmittedStore) find(ctx context.Context, filter bson.M) ([]models.SubmittedDocument, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(query.NewestFirst()))
	if err != nil {
		return nil, err
	}
	return decodeEach[models.SubmittedDocument](ctx, cursor, s.logger)
}
