package services

import (
	"context"

	"github.com/dcode-github/estate-envision/mapper"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/query"
	"github.com/dcode-github/estate-envision/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type PropertyService struct {
	properties  PropertyRepository
	favorites   FavoriteRepository
	maxPageSize int
	logger      *zap.Logger
}

func NewPropertyService(properties PropertyRepository, favorites FavoriteRepository, maxPageSize int, logger *zap.Logger) *PropertyService {
	return &PropertyService{properties: properties, favorites: favorites, maxPageSize: maxPageSize, logger: logger}
}

// Search returns the matching properties newest first. With an identity each
// result carries the caller's favorite flag.
func (s *PropertyService) Search(ctx context.Context, identity *utils.Identity, params models.SearchParams) ([]models.Property, error) {
	filter := query.BuildFilter(params)
	docs, err := s.properties.Find(ctx, filter, query.FindOptions(params.Page, params.PageSize, s.maxPageSize))
	if err != nil {
		s.logger.Error("error searching properties", zap.Error(err))
		return nil, internal("Failed to fetch properties.", err)
	}
	return mapper.MapProperties(docs, favoriteSet(ctx, s.favorites, identity, s.logger)), nil
}

// Get returns nil when id is malformed or no such property exists.
func (s *PropertyService) Get(ctx context.Context, identity *utils.Identity, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	doc, err := s.properties.FindByID(ctx, oid)
	if err != nil {
		s.logger.Error("error fetching property", zap.String("propertyId", id), zap.Error(err))
		return nil, internal("Failed to fetch property.", err)
	}
	if doc == nil {
		return nil, nil
	}
	p := mapper.MapProperty(*doc, favoriteSet(ctx, s.favorites, identity, s.logger))
	return &p, nil
}

// favoriteSet loads the caller's favorites. Failures degrade to an empty set.
func favoriteSet(ctx context.Context, favorites FavoriteRepository, identity *utils.Identity, logger *zap.Logger) mapper.FavoriteSet {
	if identity == nil {
		return nil
	}
	ids, err := favorites.PropertyIDs(ctx, identity.UserID)
	if err != nil {
		logger.Warn("error loading favorite ids", zap.String("userId", identity.UserID), zap.Error(err))
		return nil
	}
	return mapper.NewFavoriteSet(ids)
}
