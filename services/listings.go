package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/dcode-github/estate-envision/mapper"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/storage"
	"github.com/dcode-github/estate-envision/utils"
	"go.uber.org/zap"
)

var errDuplicateListing = &Error{Kind: KindConflict, Message: "A property with this ID already exists."}

// ListingService handles owner-submitted listings.
type ListingService struct {
	listings SubmittedRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewListingService(listings SubmittedRepository, logger *zap.Logger) *ListingService {
	return &ListingService{listings: listings, logger: logger, now: time.Now}
}

// Submit validates and stores a listing. The id is checked up front for a
// readable error; the unique index catches concurrent submissions of the same id.
func (s *ListingService) Submit(ctx context.Context, identity *utils.Identity, in models.SubmittedPropertyInput) (models.SubmittedProperty, error) {
	if identity == nil {
		return models.SubmittedProperty{}, ErrNotAuthenticated
	}

	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.PropertyType = strings.TrimSpace(in.PropertyType)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ColorTheme = strings.TrimSpace(in.ColorTheme)

	availableFrom, err := validateListing(in)
	if err != nil {
		return models.SubmittedProperty{}, err
	}

	exists, err := s.listings.ExistsByExternalID(ctx, in.ID)
	if err != nil {
		s.logger.Error("error checking listing id", zap.String("id", in.ID), zap.Error(err))
		return models.SubmittedProperty{}, internal("Failed to add property.", err)
	}
	if exists {
		return models.SubmittedProperty{}, errDuplicateListing
	}

	now := s.now().UTC()
	rec := &models.SubmittedRecord{
		ExternalID:    in.ID,
		Title:         in.Title,
		PropertyType:  in.PropertyType,
		Price:         in.Price,
		State:         in.State,
		City:          in.City,
		AreaSqFt:      in.AreaSqFt,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		Amenities:     mapper.SplitDelimited(in.AmenitiesString),
		Furnished:     in.Furnished,
		AvailableFrom: mapper.FormatTime(&availableFrom),
		ListedBy:      in.ListedBy,
		Tags:          mapper.SplitDelimited(in.TagsString),
		ColorTheme:    in.ColorTheme,
		Rating:        in.Rating,
		IsVerified:    in.IsVerified,
		ListingType:   in.ListingType,
		OwnerID:       identity.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.listings.Insert(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return models.SubmittedProperty{}, errDuplicateListing
		}
		s.logger.Error("error inserting listing", zap.String("id", in.ID), zap.Error(err))
		return models.SubmittedProperty{}, internal("Failed to add property.", err)
	}

	s.logger.Info("listing submitted", zap.String("id", rec.ExternalID), zap.String("ownerId", rec.OwnerID))
	return mapper.MapSubmittedProperty(rec.Document()), nil
}

func (s *ListingService) Mine(ctx context.Context, identity *utils.Identity) ([]models.SubmittedProperty, error) {
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	docs, err := s.listings.FindByOwner(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("error fetching own listings", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to fetch your properties.", err)
	}
	return mapper.MapSubmittedProperties(docs), nil
}

func (s *ListingService) All(ctx context.Context) ([]models.SubmittedProperty, error) {
	docs, err := s.listings.FindAll(ctx)
	if err != nil {
		s.logger.Error("error fetching listings", zap.Error(err))
		return nil, internal("Failed to fetch properties.", err)
	}
	return mapper.MapSubmittedProperties(docs), nil
}

// validateListing applies the add-property form rules and returns the parsed
// availability date.
func validateListing(in models.SubmittedPropertyInput) (time.Time, error) {
	switch {
	case !utils.IsValidExternalID(in.ID):
		return time.Time{}, validation("Property ID must be 3-64 letters, digits, hyphens or underscores.")
	case len(in.Title) < 5:
		return time.Time{}, validation("Title must be at least 5 characters long.")
	case in.PropertyType == "":
		return time.Time{}, validation("Property type is required.")
	case !(in.Price > 0):
		return time.Time{}, validation("Price must be a positive number.")
	case len(in.City) < 2:
		return time.Time{}, validation("City must be at least 2 characters long.")
	case len(in.State) < 2:
		return time.Time{}, validation("State must be at least 2 characters long.")
	case !(in.AreaSqFt > 0):
		return time.Time{}, validation("Area must be a positive number.")
	case in.Bedrooms < 0 || math.Trunc(in.Bedrooms) != in.Bedrooms:
		return time.Time{}, validation("Bedrooms must be a whole number of zero or more.")
	case !(in.Bathrooms >= 0):
		return time.Time{}, validation("Bathrooms cannot be negative.")
	case !in.Furnished.Valid():
		return time.Time{}, validation("Furnishing status must be Furnished, Semi-Furnished or Unfurnished.")
	case !in.ListedBy.Valid():
		return time.Time{}, validation("Listed by must be Builder, Owner or Agent.")
	case !in.ListingType.Valid():
		return time.Time{}, validation("Listing type must be sale or rent.")
	case in.ColorTheme != "" && !utils.IsValidHexColor(in.ColorTheme):
		return time.Time{}, validation("Color theme must be a hex color such as #A1B2C3.")
	case in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5 || math.IsNaN(*in.Rating)):
		return time.Time{}, validation("Rating must be between 0 and 5.")
	}

	availableFrom, ok := parseDate(in.AvailableFrom)
	if !ok {
		return time.Time{}, validation("Available from must be a valid date.")
	}
	return availableFrom, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
