package services

import (
	"context"
	"time"

	"github.com/dcode-github/estate-envision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDocument, error)
	FindByID(ctx context.Context, id string) (*models.UserDocument, error)
	Insert(ctx context.Context, user *models.UserDocument) error
}

type PropertyRepository interface {
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.PropertyDocument, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyDocument, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.PropertyDocument, error)
}

type SubmittedRepository interface {
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	Insert(ctx context.Context, rec *models.SubmittedRecord) error
	FindByOwner(ctx context.Context, ownerID string) ([]models.SubmittedDocument, error)
	FindAll(ctx context.Context) ([]models.SubmittedDocument, error)
}

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, propertyID string) (bool, error)
	Insert(ctx context.Context, fav *models.Favorite) error
	Delete(ctx context.Context, userID, propertyID string) (bool, error)
	PropertyIDs(ctx context.Context, userID string) ([]string, error)
}

type RecommendationRepository interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
	FindByRecipient(ctx context.Context, email string) ([]models.Recommendation, error)
}

type AttemptCounter interface {
	Failures(ctx context.Context, email string) (int64, error)
	RecordFailure(ctx context.Context, email string, window time.Duration) (int64, error)
	Reset(ctx context.Context, email string) error
}
