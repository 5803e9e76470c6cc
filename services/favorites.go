package services

import (
	"context"
	"errors"
	"time"

	"github.com/dcode-github/estate-envision/mapper"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/storage"
	"github.com/dcode-github/estate-envision/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FavoriteService keeps the per-user favorite set. Adding is idempotent;
// removing something that is not there is reported as not found.
type FavoriteService struct {
	favorites  FavoriteRepository
	properties PropertyRepository
	logger     *zap.Logger
}

func NewFavoriteService(favorites FavoriteRepository, properties PropertyRepository, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, properties: properties, logger: logger}
}

func (s *FavoriteService) Add(ctx context.Context, identity *utils.Identity, propertyID string) (models.FavoriteStatus, error) {
	if identity == nil {
		return models.FavoriteStatus{}, ErrNotAuthenticated
	}
	if !utils.IsValidObjectID(propertyID) {
		return models.FavoriteStatus{}, validation("Invalid property ID format.")
	}

	present := models.FavoriteStatus{PropertyID: propertyID, IsFavorite: true}

	exists, err := s.favorites.Exists(ctx, identity.UserID, propertyID)
	if err != nil {
		s.logger.Error("error checking favorite", zap.String("userId", identity.UserID), zap.Error(err))
		return models.FavoriteStatus{}, internal("Failed to add favorite.", err)
	}
	if exists {
		return present, nil
	}

	fav := &models.Favorite{UserID: identity.UserID, PropertyID: propertyID, CreatedAt: time.Now().UTC()}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return present, nil
		}
		s.logger.Error("error adding favorite", zap.String("userId", identity.UserID), zap.Error(err))
		return models.FavoriteStatus{}, internal("Failed to add favorite.", err)
	}

	present.Changed = true
	return present, nil
}

func (s *FavoriteService) Remove(ctx context.Context, identity *utils.Identity, propertyID string) (models.FavoriteStatus, error) {
	if identity == nil {
		return models.FavoriteStatus{}, ErrNotAuthenticated
	}
	if !utils.IsValidObjectID(propertyID) {
		return models.FavoriteStatus{}, validation("Invalid property ID format.")
	}

	removed, err := s.favorites.Delete(ctx, identity.UserID, propertyID)
	if err != nil {
		s.logger.Error("error removing favorite", zap.String("userId", identity.UserID), zap.Error(err))
		return models.FavoriteStatus{}, internal("Failed to remove favorite.", err)
	}
	if !removed {
		return models.FavoriteStatus{}, notFound("Favorite not found or already removed.")
	}
	return models.FavoriteStatus{PropertyID: propertyID, IsFavorite: false, Changed: true}, nil
}

// IsFavorite never fails: no identity, a bad id or a storage error all read as false.
func (s *FavoriteService) IsFavorite(ctx context.Context, identity *utils.Identity, propertyID string) bool {
	if identity == nil || !utils.IsValidObjectID(propertyID) {
		return false
	}
	exists, err := s.favorites.Exists(ctx, identity.UserID, propertyID)
	if err != nil {
		s.logger.Error("error checking favorite status", zap.String("userId", identity.UserID), zap.Error(err))
		return false
	}
	return exists
}

// ListIDs returns favorited property ids, newest association first.
func (s *FavoriteService) ListIDs(ctx context.Context, identity *utils.Identity) ([]string, error) {
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	ids, err := s.favorites.PropertyIDs(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("error fetching favorite ids", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to fetch favorites.", err)
	}
	return ids, nil
}

// ListProperties joins the favorite ids to their properties in favorite order.
// Ids whose property is gone are skipped.
func (s *FavoriteService) ListProperties(ctx context.Context, identity *utils.Identity) ([]models.Property, error) {
	ids, err := s.ListIDs(ctx, identity)
	if err != nil {
		return nil, err
	}

	docs, err := loadProperties(ctx, s.properties, ids)
	if err != nil {
		s.logger.Error("error fetching favorite properties", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to fetch favorite properties.", err)
	}

	favorites := mapper.NewFavoriteSet(ids)
	properties := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		if doc, ok := docs[id]; ok {
			properties = append(properties, mapper.MapProperty(doc, favorites))
		}
	}
	return properties, nil
}

// loadProperties fetches the properties behind ids in one query, keyed by hex
// id. Malformed ids are ignored.
func loadProperties(ctx context.Context, repo PropertyRepository, ids []string) (map[string]models.PropertyDocument, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		if _, dup := seen[oid]; dup {
			continue
		}
		seen[oid] = struct{}{}
		oids = append(oids, oid)
	}

	byID := make(map[string]models.PropertyDocument, len(oids))
	if len(oids) == 0 {
		return byID, nil
	}
	docs, err := repo.FindByIDs(ctx, oids)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		byID[doc.ID.Hex()] = doc
	}
	return byID, nil
}
