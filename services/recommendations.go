package services

import (
	"context"
	"strings"
	"time"

	"github.com/dcode-github/estate-envision/mapper"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/utils"
	"go.uber.org/zap"
)

const anonymousRecommender = "A user"

// RecommendationService records recommendations as an append-only log.
// Unlike favorites, repeating a recommendation stores another record.
type RecommendationService struct {
	recommendations RecommendationRepository
	users           UserRepository
	properties      PropertyRepository
	favorites       FavoriteRepository
	logger          *zap.Logger
}

func NewRecommendationService(
	recommendations RecommendationRepository,
	users UserRepository,
	properties PropertyRepository,
	favorites FavoriteRepository,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		recommendations: recommendations,
		users:           users,
		properties:      properties,
		favorites:       favorites,
		logger:          logger,
	}
}

func (s *RecommendationService) Create(ctx context.Context, identity *utils.Identity, req models.RecommendationRequest) (models.Recommendation, error) {
	recommender, err := s.requireUser(ctx, identity, "You must be logged in to send recommendations.")
	if err != nil {
		return models.Recommendation{}, err
	}

	recipient := strings.TrimSpace(req.RecipientEmail)
	switch {
	case !utils.IsValidObjectID(req.PropertyID):
		return models.Recommendation{}, validation("Invalid property ID format.")
	case !utils.IsValidEmail(recipient):
		return models.Recommendation{}, validation("Please enter a valid recipient email address.")
	case utils.SameEmail(recipient, recommender.Email):
		return models.Recommendation{}, validation("You cannot recommend a property to yourself.")
	}

	rec := models.Recommendation{
		RecommenderUserID: recommender.ID.Hex(),
		RecommenderEmail:  recommender.Email,
		RecommenderName:   recommender.Name,
		RecipientEmail:    utils.NormalizeEmail(recipient),
		PropertyID:        req.PropertyID,
		Message:           strings.TrimSpace(req.Message),
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.recommendations.Insert(ctx, &rec); err != nil {
		s.logger.Error("error creating recommendation", zap.String("userId", identity.UserID), zap.Error(err))
		return models.Recommendation{}, internal("Failed to send recommendation.", err)
	}

	s.logger.Info("recommendation created",
		zap.String("recommendationId", rec.ID.Hex()),
		zap.String("propertyId", rec.PropertyID),
	)
	return rec, nil
}

// Received lists recommendations addressed to the caller, newest first, each
// joined to the current state of its property. Recommendations whose property
// no longer exists are left out.
func (s *RecommendationService) Received(ctx context.Context, identity *utils.Identity) ([]models.ReceivedRecommendation, error) {
	user, err := s.requireUser(ctx, identity, ErrNotAuthenticated.Message)
	if err != nil {
		return nil, err
	}

	recs, err := s.recommendations.FindByRecipient(ctx, utils.NormalizeEmail(user.Email))
	if err != nil {
		s.logger.Error("error fetching recommendations", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to fetch recommendations.", err)
	}
	if len(recs) == 0 {
		return []models.ReceivedRecommendation{}, nil
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.PropertyID)
	}
	docs, err := loadProperties(ctx, s.properties, ids)
	if err != nil {
		s.logger.Error("error fetching recommended properties", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to fetch recommendations.", err)
	}

	favorites := favoriteSet(ctx, s.favorites, identity, s.logger)
	received := make([]models.ReceivedRecommendation, 0, len(recs))
	for _, rec := range recs {
		doc, ok := docs[rec.PropertyID]
		if !ok {
			continue
		}
		received = append(received, models.ReceivedRecommendation{
			Property:              mapper.MapProperty(doc, favorites),
			RecommendationDetails: details(rec),
		})
	}
	return received, nil
}

func details(rec models.Recommendation) models.RecommendationDetails {
	name := rec.RecommenderName
	if name == "" {
		name = anonymousRecommender
	}
	createdAt := rec.CreatedAt
	return models.RecommendationDetails{
		RecommenderName:  name,
		RecommenderEmail: rec.RecommenderEmail,
		Message:          rec.Message,
		RecommendedAt:    mapper.FormatTime(&createdAt),
	}
}

func (s *RecommendationService) requireUser(ctx context.Context, identity *utils.Identity, msg string) (*models.UserDocument, error) {
	if identity == nil {
		return nil, &Error{Kind: KindUnauthenticated, Message: msg}
	}
	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("error finding user", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to load user.", err)
	}
	if user == nil {
		return nil, &Error{Kind: KindUnauthenticated, Message: msg}
	}
	return user, nil
}
