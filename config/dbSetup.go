package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	UsersCollection           = "users"
	PropertiesCollection      = "properties"
	SubmittedCollection       = "newproperties"
	FavoritesCollection       = "favourites"
	RecommendationsCollection = "recommendations"
)

type Collections struct {
	Users           *mongo.Collection
	Properties      *mongo.Collection
	Submitted       *mongo.Collection
	Favorites       *mongo.Collection
	Recommendations *mongo.Collection
}

// ConnectDB opens the process-wide connection pool and pings it once.
func ConnectDB(ctx context.Context, cfg Config, logger *zap.Logger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("db", cfg.DBName))
	return client, nil
}

func NewCollections(client *mongo.Client, dbName string) Collections {
	db := client.Database(dbName)
	return Collections{
		Users:           db.Collection(UsersCollection),
		Properties:      db.Collection(PropertiesCollection),
		Submitted:       db.Collection(SubmittedCollection),
		Favorites:       db.Collection(FavoritesCollection),
		Recommendations: db.Collection(RecommendationsCollection),
	}
}

// EnsureIndexes creates the unique indexes that back the application's
// uniqueness rules, plus the lookup indexes used by list queries.
func EnsureIndexes(ctx context.Context, c Collections) error {
	specs := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{c.Users, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{c.Submitted, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{c.Favorites, []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "propertyId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{c.Recommendations, []mongo.IndexModel{
			{Keys: bson.D{{Key: "recipientEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{c.Properties, []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		}},
	}

	for _, spec := range specs {
		if _, err := spec.coll.Indexes().CreateMany(ctx, spec.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", spec.coll.Name(), err)
		}
	}
	return nil
}

func CloseDBConnection(client *mongo.Client, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("error closing MongoDB connection", zap.Error(err))
		return
	}
	logger.Info("MongoDB connection closed")
}
