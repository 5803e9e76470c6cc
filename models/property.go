package models

type PropertyType string

const (
	PropertyHouse     PropertyType = "House"
	PropertyApartment PropertyType = "Apartment"
	PropertyCondo     PropertyType = "Condo"
	PropertyTownhouse PropertyType = "Townhouse"
	PropertyLand      PropertyType = "Land"
	PropertyOther     PropertyType = "Other"
)

// NotAvailable is the placeholder stored (and returned) for an unknown city or state.
const NotAvailable = "N/A"

type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Property is the normalized, outward-facing shape of a document from the
// properties collection. Timestamps are ISO-8601 strings; empty means absent.
type Property struct {
	PropertyID    string       `json:"propertyId"`
	Title         string       `json:"title"`
	PropertyType  PropertyType `json:"propertyType"`
	Location      Location     `json:"location"`
	Price         float64      `json:"price"`
	Bedrooms      float64      `json:"bedrooms"`
	Bathrooms     float64      `json:"bathrooms"`
	AreaSqFt      float64      `json:"areaSqFt"`
	Description   string       `json:"description,omitempty"`
	Amenities     []string     `json:"amenities"`
	Tags          []string     `json:"tags"`
	Images        []string     `json:"images"`
	ThumbnailURL  string       `json:"thumbnailUrl,omitempty"`
	AvailableFrom string       `json:"availableFrom,omitempty"`
	IsVerified    bool         `json:"isVerified"`
	ColorTheme    string       `json:"colorTheme,omitempty"`
	OwnerID       string       `json:"ownerId,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
	UpdatedAt     string       `json:"updatedAt,omitempty"`
	IsFavorite    bool         `json:"isFavorite"`
}
