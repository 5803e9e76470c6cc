package services

import (
	"context"
	"testing"
	"time"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validInput() models.SubmittedPropertyInput {
	return models.SubmittedPropertyInput{
		ID:              "PROP1001",
		Title:           "Sunny two bedroom flat",
		PropertyType:    "Apartment",
		Price:           250000,
		State:           "Karnataka",
		City:            "Bengaluru",
		AreaSqFt:        1100,
		Bedrooms:        2,
		Bathrooms:       2,
		AmenitiesString: "lift, gym|parking",
		Furnished:       models.SemiFurnished,
		AvailableFrom:   "2025-03-01",
		ListedBy:        models.ListedByOwner,
		TagsString:      "metro",
		ListingType:     models.ListingSale,
	}
}

func newListingFixture() (*ListingService, *fakeSubmitted) {
	repo := &fakeSubmitted{}
	svc := NewListingService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, repo
}

func TestSubmitListing(t *testing.T) {
	svc, repo := newListingFixture()
	owner := &utils.Identity{UserID: "owner-1"}

	listing, err := svc.Submit(context.Background(), owner, validInput())
	require.NoError(t, err)
	assert.Equal(t, "PROP1001", listing.ID)
	assert.NotEmpty(t, listing.MongoID)
	assert.Equal(t, []string{"lift", "gym", "parking"}, listing.Amenities)
	assert.Equal(t, []string{"metro"}, listing.Tags)
	assert.Equal(t, "2025-03-01T00:00:00.000Z", listing.AvailableFrom)
	assert.Equal(t, "owner-1", listing.OwnerID)
	assert.Equal(t, "2025-01-02T03:04:05.000Z", listing.CreatedAt)
	require.Len(t, repo.records, 1)

	mine, err := svc.Mine(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, listing, mine[0])

	others, err := svc.Mine(context.Background(), &utils.Identity{UserID: "owner-2"})
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestSubmitListingDuplicateID(t *testing.T) {
	svc, repo := newListingFixture()
	owner := &utils.Identity{UserID: "owner-1"}

	_, err := svc.Submit(context.Background(), owner, validInput())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), owner, validInput())
	assert.Equal(t, KindConflict, KindOf(err))

	repo.hideExisting = true
	_, err = svc.Submit(context.Background(), owner, validInput())
	assert.Equal(t, KindConflict, KindOf(err), "unique index violation reads as the same conflict")
	assert.Len(t, repo.records, 1)
}

func TestSubmitListingValidation(t *testing.T) {
	svc, repo := newListingFixture()
	owner := &utils.Identity{UserID: "owner-1"}
	bad := 7.5

	cases := map[string]func(*models.SubmittedPropertyInput){
		"id too short":       func(in *models.SubmittedPropertyInput) { in.ID = "P1" },
		"id has spaces":      func(in *models.SubmittedPropertyInput) { in.ID = "PROP 1" },
		"short title":        func(in *models.SubmittedPropertyInput) { in.Title = "Flat" },
		"zero price":         func(in *models.SubmittedPropertyInput) { in.Price = 0 },
		"short city":         func(in *models.SubmittedPropertyInput) { in.City = "X" },
		"fractional bedroom": func(in *models.SubmittedPropertyInput) { in.Bedrooms = 1.5 },
		"negative bathroom":  func(in *models.SubmittedPropertyInput) { in.Bathrooms = -1 },
		"furnishing":         func(in *models.SubmittedPropertyInput) { in.Furnished = "Partly" },
		"listed by":          func(in *models.SubmittedPropertyInput) { in.ListedBy = "Broker" },
		"listing type":       func(in *models.SubmittedPropertyInput) { in.ListingType = "lease" },
		"color":              func(in *models.SubmittedPropertyInput) { in.ColorTheme = "blue" },
		"rating":             func(in *models.SubmittedPropertyInput) { in.Rating = &bad },
		"date":               func(in *models.SubmittedPropertyInput) { in.AvailableFrom = "next week" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Submit(context.Background(), owner, in)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
	assert.Empty(t, repo.records)

	_, err := svc.Submit(context.Background(), nil, validInput())
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestAllListingsNewestFirst(t *testing.T) {
	svc, _ := newListingFixture()

	first := validInput()
	second := validInput()
	second.ID = "PROP1002"
	_, err := svc.Submit(context.Background(), &utils.Identity{UserID: "a"}, first)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), &utils.Identity{UserID: "b"}, second)
	require.NoError(t, err)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "PROP1002", all[0].ID)
}
