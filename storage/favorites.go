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
)

type FavoriteStore struct {
	coll *mongo.Collection
}

func NewFavoriteStore(coll *mongo.Collection) *FavoriteStore {
	return &FavoriteStore{coll: coll}
}

func (s *FavoriteStore) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	var fav models.Favorite
	err := s.coll.FindOne(ctx, bson.M{"userId": userID, "propertyId": propertyID}).Decode(&fav)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert returns ErrDuplicate when the pair is already stored.
func (s *FavoriteStore) Insert(ctx context.Context, fav *models.Favorite) error {
	if fav.ID.IsZero() {
		fav.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, fav)
	return classifyWrite(err)
}

// Delete reports whether a favorite was removed.
func (s *FavoriteStore) Delete(ctx context.Context, userID, propertyID string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// PropertyIDs lists a user's favorite property ids, newest first.
func (s *FavoriteStore) PropertyIDs(ctx context.Context, userID string) ([]string, error) {
	opts := options.Find().
		SetSort(query.NewestFirst()).
		SetProjection(bson.M{"propertyId": 1, "createdAt": 1})

	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var fav models.Favorite
		if err := cursor.Decode(&fav); err != nil {
			return nil, err
		}
		ids = append(ids, fav.PropertyID)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
