package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FurnishingStatus string

const (
	Furnished     FurnishingStatus = "Furnished"
	SemiFurnished FurnishingStatus = "Semi-Furnished"
	Unfurnished   FurnishingStatus = "Unfurnished"
)

func (f FurnishingStatus) Valid() bool {
	switch f {
	case Furnished, SemiFurnished, Unfurnished:
		return true
	}
	return false
}

type ListedBy string

const (
	ListedByBuilder ListedBy = "Builder"
	ListedByOwner   ListedBy = "Owner"
	ListedByAgent   ListedBy = "Agent"
)

func (l ListedBy) Valid() bool {
	switch l {
	case ListedByBuilder, ListedByOwner, ListedByAgent:
		return true
	}
	return false
}

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

func (l ListingType) Valid() bool {
	return l == ListingSale || l == ListingRent
}

// SubmittedProperty is an owner-authored listing from the newproperties collection.
type SubmittedProperty struct {
	MongoID       string           `json:"_id"`
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	PropertyType  string           `json:"propertyType"`
	Price         float64          `json:"price"`
	State         string           `json:"state"`
	City          string           `json:"city"`
	AreaSqFt      float64          `json:"areaSqFt"`
	Bedrooms      float64          `json:"bedrooms"`
	Bathrooms     float64          `json:"bathrooms"`
	Amenities     []string         `json:"amenities"`
	Furnished     FurnishingStatus `json:"furnished"`
	AvailableFrom string           `json:"availableFrom,omitempty"`
	ListedBy      ListedBy         `json:"listedBy"`
	Tags          []string         `json:"tags"`
	ColorTheme    string           `json:"colorTheme,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
	IsVerified    bool             `json:"isVerified"`
	ListingType   ListingType      `json:"listingType"`
	OwnerID       string           `json:"ownerId"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`
}

// SubmittedPropertyInput is what the add-property form posts. Amenities and tags
// arrive as single comma or pipe delimited strings.
type SubmittedPropertyInput struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	PropertyType    string           `json:"propertyType"`
	Price           float64          `json:"price"`
	State           string           `json:"state"`
	City            string           `json:"city"`
	AreaSqFt        float64          `json:"areaSqFt"`
	Bedrooms        float64          `json:"bedrooms"`
	Bathrooms       float64          `json:"bathrooms"`
	AmenitiesString string           `json:"amenitiesString"`
	Furnished       FurnishingStatus `json:"furnished"`
	AvailableFrom   string           `json:"availableFrom"`
	ListedBy        ListedBy         `json:"listedBy"`
	TagsString      string           `json:"tagsString"`
	ColorTheme      string           `json:"colorTheme,omitempty"`
	Rating          *float64         `json:"rating,omitempty"`
	IsVerified      bool             `json:"isVerified,omitempty"`
	ListingType     ListingType      `json:"listingType"`
}

// SubmittedRecord is the write shape for the newproperties collection.
type SubmittedRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID    string             `bson:"id"`
	Title         string             `bson:"title"`
	PropertyType  string             `bson:"propertyType"`
	Price         float64            `bson:"price"`
	State         string             `bson:"state"`
	City          string             `bson:"city"`
	AreaSqFt      float64            `bson:"areaSqFt"`
	Bedrooms      float64            `bson:"bedrooms"`
	Bathrooms     float64            `bson:"bathrooms"`
	Amenities     []string           `bson:"amenities"`
	Furnished     FurnishingStatus   `bson:"furnished"`
	AvailableFrom string             `bson:"availableFrom"`
	ListedBy      ListedBy           `bson:"listedBy"`
	Tags          []string           `bson:"tags"`
	ColorTheme    string             `bson:"colorTheme,omitempty"`
	Rating        *float64           `bson:"rating,omitempty"`
	IsVerified    bool               `bson:"isVerified"`
	ListingType   ListingType        `bson:"listingType"`
	OwnerID       string             `bson:"ownerId"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// Document returns the record as it reads back from storage.
func (r SubmittedRecord) Document() SubmittedDocument {
	createdAt, updatedAt := r.CreatedAt, r.UpdatedAt
	return SubmittedDocument{
		ID:            r.ID,
		ExternalID:    r.ExternalID,
		Title:         r.Title,
		PropertyType:  r.PropertyType,
		Price:         r.Price,
		State:         r.State,
		City:          r.City,
		AreaSqFt:      r.AreaSqFt,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Amenities:     NewListField(r.Amenities),
		Furnished:     string(r.Furnished),
		AvailableFrom: stringValue(r.AvailableFrom),
		ListedBy:      string(r.ListedBy),
		Tags:          NewListField(r.Tags),
		ColorTheme:    r.ColorTheme,
		Rating:        r.Rating,
		IsVerified:    boolValue(r.IsVerified),
		ListingType:   string(r.ListingType),
		OwnerID:       r.OwnerID,
		CreatedAt:     &createdAt,
		UpdatedAt:     &updatedAt,
	}
}

func stringValue(s string) bson.RawValue {
	t, data, err := bson.MarshalValue(s)
	if err != nil {
		return bson.RawValue{}
	}
	return bson.RawValue{Type: t, Value: data}
}

func boolValue(b bool) bson.RawValue {
	t, data, err := bson.MarshalValue(b)
	if err != nil {
		return bson.RawValue{}
	}
	return bson.RawValue{Type: t, Value: data}
}
