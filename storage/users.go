package storage

import (
	"context"
	"errors"

	"github.com/dcode-github/estate-envision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{coll: coll}
}

// FindByEmail returns nil, nil when no user has that email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.UserDocument, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// FindByID returns nil, nil for unknown or malformed ids.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.UserDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *UserStore) Insert(ctx context.Context, user *models.UserDocument) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, user)
	return classifyWrite(err)
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.UserDocument, error) {
	var user models.UserDocument
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
