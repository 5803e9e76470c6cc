package storage

import (
	"context"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecommendationStore struct {
	coll *mongo.Collection
}

func NewRecommendationStore(coll *mongo.Collection) *RecommendationStore {
	return &RecommendationStore{coll: coll}
}

func (s *RecommendationStore) Insert(ctx context.Context, rec *models.Recommendation) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, rec)
	return err
}

// FindByRecipient matches the stored lower-cased recipient email, newest first.
func (s *RecommendationStore) FindByRecipient(ctx context.Context, email string) ([]models.Recommendation, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"recipientEmail": email}, options.Find().SetSort(query.NewestFirst()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recs := []models.Recommendation{}
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
