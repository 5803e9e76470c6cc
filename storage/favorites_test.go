package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/dcode-github/estate-envision/models"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestFavoriteStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("exists", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "u1"},
			{Key: "propertyId", Value: "p1"},
		}))

		ok, err := store.Exists(ctx, "u1", "p1")
		require.NoError(mt, err)
		require.True(mt, ok)
	})

	mt.Run("missing", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		ok, err := store.Exists(ctx, "u1", "p1")
		require.NoError(mt, err)
		require.False(mt, ok)
	})

	mt.Run("insert duplicate", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := store.Insert(ctx, &models.Favorite{UserID: "u1", PropertyID: "p1", CreatedAt: time.Now()})
		require.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("insert assigns id", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		fav := &models.Favorite{UserID: "u1", PropertyID: "p1", CreatedAt: time.Now()}
		require.NoError(mt, store.Insert(ctx, fav))
		require.False(mt, fav.ID.IsZero())
	})

	mt.Run("delete", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		removed, err := store.Delete(ctx, "u1", "p1")
		require.NoError(mt, err)
		require.True(mt, removed)

		removed, err = store.Delete(ctx, "u1", "p1")
		require.NoError(mt, err)
		require.False(mt, removed)
	})

	mt.Run("property ids", func(mt *mtest.T) {
		store := NewFavoriteStore(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "propertyId", Value: "p2"}},
			bson.D{{Key: "propertyId", Value: "p1"}},
		))

		ids, err := store.PropertyIDs(ctx, "u1")
		require.NoError(mt, err)
		require.Equal(mt, []string{"p2", "p1"}, ids)
	})
}
