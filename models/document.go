package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListKind tags how a list-or-string field was stored.
type ListKind int

const (
	ListAbsent ListKind = iota
	ListArray
	ListDelimited
	ListUnsupported
)

// ListField holds amenities, tags and images as they were found in storage.
// Array elements that are not strings are dropped while decoding.
type ListField struct {
	Kind  ListKind
	Items []string
	Raw   string
}

func NewListField(v interface{}) ListField {
	switch t := v.(type) {
	case nil:
		return ListField{}
	case string:
		return ListField{Kind: ListDelimited, Raw: t}
	case []string:
		return ListField{Kind: ListArray, Items: append([]string{}, t...)}
	case primitive.A:
		return ListField{Kind: ListArray, Items: onlyStrings(t)}
	case []interface{}:
		return ListField{Kind: ListArray, Items: onlyStrings(t)}
	default:
		return ListField{Kind: ListUnsupported}
	}
}

func onlyStrings(values []interface{}) []string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

func (l *ListField) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*l = ListField{}
	case bsontype.String:
		*l = ListField{Kind: ListDelimited, Raw: rv.StringValue()}
	case bsontype.Array:
		values, err := rv.Array().Values()
		if err != nil {
			return err
		}
		items := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.StringValueOK(); ok {
				items = append(items, s)
			}
		}
		*l = ListField{Kind: ListArray, Items: items}
	default:
		*l = ListField{Kind: ListUnsupported}
	}
	return nil
}

// LocationDocument is the nested location block. Older documents carry city
// and state at the top level instead, or carry "N/A" here.
type LocationDocument struct {
	Address string `bson:"address,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty"`
	Country string `bson:"country,omitempty"`
}

// PropertyDocument is a properties collection document. AvailableFrom and
// IsVerified are kept raw because both strings and native values occur.
type PropertyDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Title         string             `bson:"title"`
	Type          string             `bson:"type"`
	Location      *LocationDocument  `bson:"location,omitempty"`
	City          string             `bson:"city,omitempty"`
	State         string             `bson:"state,omitempty"`
	Price         float64            `bson:"price"`
	Bedrooms      float64            `bson:"bedrooms"`
	Bathrooms     float64            `bson:"bathrooms"`
	AreaSqFt      float64            `bson:"areaSqFt"`
	Description   string             `bson:"description,omitempty"`
	Amenities     ListField          `bson:"amenities"`
	Tags          ListField          `bson:"tags"`
	Images        ListField          `bson:"images"`
	ThumbnailURL  string             `bson:"thumbnailUrl,omitempty"`
	AvailableFrom bson.RawValue      `bson:"availableFrom"`
	IsVerified    bson.RawValue      `bson:"isVerified"`
	ColorTheme    string             `bson:"colorTheme,omitempty"`
	OwnerID       string             `bson:"ownerId,omitempty"`
	CreatedAt     *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty"`
}

// SchemaShape reports which location layout a property document uses.
type SchemaShape int

const (
	ShapeUnknown SchemaShape = iota
	ShapeNested
	ShapeLegacyFlat
)

func (d PropertyDocument) Shape() SchemaShape {
	if d.Location != nil && (usable(d.Location.City) || usable(d.Location.State)) {
		return ShapeNested
	}
	if usable(d.City) || usable(d.State) {
		return ShapeLegacyFlat
	}
	return ShapeUnknown
}

func usable(s string) bool {
	return s != "" && s != NotAvailable
}

type SubmittedDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	ExternalID    string             `bson:"id"`
	Title         string             `bson:"title"`
	PropertyType  string             `bson:"propertyType"`
	Price         float64            `bson:"price"`
	State         string             `bson:"state"`
	City          string             `bson:"city"`
	AreaSqFt      float64            `bson:"areaSqFt"`
	Bedrooms      float64            `bson:"bedrooms"`
	Bathrooms     float64            `bson:"bathrooms"`
	Amenities     ListField          `bson:"amenities"`
	Furnished     string             `bson:"furnished"`
	AvailableFrom bson.RawValue      `bson:"availableFrom"`
	ListedBy      string             `bson:"listedBy"`
	Tags          ListField          `bson:"tags"`
	ColorTheme    string             `bson:"colorTheme,omitempty"`
	Rating        *float64           `bson:"rating,omitempty"`
	IsVerified    bson.RawValue      `bson:"isVerified"`
	ListingType   string             `bson:"listingType"`
	OwnerID       string             `bson:"ownerId"`
	CreatedAt     *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty"`
}
