// Package mapper turns stored documents into the records handed to the
// presentation layer. Every function here is pure.
package mapper

import (
	"regexp"
	"strings"
	"time"

	"github.com/dcode-github/estate-envision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

var listDelimiters = regexp.MustCompile(`[,|]`)

// FavoriteSet is the set of property ids a user has favorited.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(ids []string) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func MapProperty(doc models.PropertyDocument, favorites FavoriteSet) models.Property {
	id := doc.ID.Hex()
	return models.Property{
		PropertyID:    id,
		Title:         doc.Title,
		PropertyType:  models.PropertyType(doc.Type),
		Location:      ResolveLocation(doc),
		Price:         doc.Price,
		Bedrooms:      doc.Bedrooms,
		Bathrooms:     doc.Bathrooms,
		AreaSqFt:      doc.AreaSqFt,
		Description:   doc.Description,
		Amenities:     NormalizeList(doc.Amenities),
		Tags:          NormalizeList(doc.Tags),
		Images:        ArrayItems(doc.Images),
		ThumbnailURL:  doc.ThumbnailURL,
		AvailableFrom: FormatDateValue(doc.AvailableFrom),
		IsVerified:    IsTrue(doc.IsVerified),
		ColorTheme:    doc.ColorTheme,
		OwnerID:       doc.OwnerID,
		CreatedAt:     FormatTime(doc.CreatedAt),
		UpdatedAt:     FormatTime(doc.UpdatedAt),
		IsFavorite:    favorites.Has(id),
	}
}

func MapProperties(docs []models.PropertyDocument, favorites FavoriteSet) []models.Property {
	properties := make([]models.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, MapProperty(doc, favorites))
	}
	return properties
}

func MapSubmittedProperty(doc models.SubmittedDocument) models.SubmittedProperty {
	return models.SubmittedProperty{
		MongoID:       doc.ID.Hex(),
		ID:            doc.ExternalID,
		Title:         doc.Title,
		PropertyType:  doc.PropertyType,
		Price:         doc.Price,
		State:         doc.State,
		City:          doc.City,
		AreaSqFt:      doc.AreaSqFt,
		Bedrooms:      doc.Bedrooms,
		Bathrooms:     doc.Bathrooms,
		Amenities:     NormalizeList(doc.Amenities),
		Furnished:     models.FurnishingStatus(doc.Furnished),
		AvailableFrom: FormatDateValue(doc.AvailableFrom),
		ListedBy:      models.ListedBy(doc.ListedBy),
		Tags:          NormalizeList(doc.Tags),
		ColorTheme:    doc.ColorTheme,
		Rating:        doc.Rating,
		IsVerified:    IsTrue(doc.IsVerified),
		ListingType:   models.ListingType(doc.ListingType),
		OwnerID:       doc.OwnerID,
		CreatedAt:     FormatTime(doc.CreatedAt),
		UpdatedAt:     FormatTime(doc.UpdatedAt),
	}
}

func MapSubmittedProperties(docs []models.SubmittedDocument) []models.SubmittedProperty {
	listings := make([]models.SubmittedProperty, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, MapSubmittedProperty(doc))
	}
	return listings
}

// ResolveLocation prefers the nested location and falls back, field by field,
// to the legacy top-level city and state.
func ResolveLocation(doc models.PropertyDocument) models.Location {
	loc := models.Location{City: models.NotAvailable, State: models.NotAvailable}
	var nested models.LocationDocument
	if doc.Location != nil {
		nested = *doc.Location
		loc.Address = nested.Address
		loc.ZipCode = nested.ZipCode
		loc.Country = nested.Country
	}

	switch doc.Shape() {
	case models.ShapeNested:
		loc.City = firstUsable(nested.City, doc.City)
		loc.State = firstUsable(nested.State, doc.State)
	case models.ShapeLegacyFlat:
		loc.City = firstUsable(doc.City)
		loc.State = firstUsable(doc.State)
	}
	return loc
}

func firstUsable(values ...string) string {
	for _, v := range values {
		if v != "" && v != models.NotAvailable {
			return v
		}
	}
	return models.NotAvailable
}

// NormalizeList materializes a list-or-string field as a string slice. A
// delimited string is split on commas and pipes; anything else is empty.
func NormalizeList(field models.ListField) []string {
	switch field.Kind {
	case models.ListArray:
		return append([]string{}, field.Items...)
	case models.ListDelimited:
		return SplitDelimited(field.Raw)
	default:
		return []string{}
	}
}

// ArrayItems keeps only a stored array; a bare string does not count.
func ArrayItems(field models.ListField) []string {
	if field.Kind != models.ListArray {
		return []string{}
	}
	return append([]string{}, field.Items...)
}

func SplitDelimited(s string) []string {
	parts := listDelimiters.Split(s, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func IsTrue(v bson.RawValue) bool {
	if v.Type != bsontype.Boolean {
		return false
	}
	b, ok := v.BooleanOK()
	return ok && b
}

func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoLayout)
}

// FormatDateValue renders a stored date. Strings pass through unchanged.
func FormatDateValue(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		return v.StringValue()
	case bsontype.DateTime:
		t := v.Time()
		return FormatTime(&t)
	default:
		return ""
	}
}
