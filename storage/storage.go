// Package storage holds the MongoDB and redis access code. Stores return
// driver errors unchanged, except duplicate-key writes which become ErrDuplicate.
package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrDuplicate = errors.New("storage: duplicate key")

func classifyWrite(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// decodeEach reads the cursor one document at a time. A document that does
// not decode is logged and skipped, so one drifted record cannot fail a whole list.
func decodeEach[T any](ctx context.Context, cursor *mongo.Cursor, logger *zap.Logger) ([]T, error) {
	defer cursor.Close(ctx)

	out := []T{}
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			logger.Warn("skipping undecodable document",
				zap.Stringer("_id", cursor.Current.Lookup("_id")),
				zap.Error(err),
			)
			continue
		}
		out = append(out, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
