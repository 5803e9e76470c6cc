package models

// SearchParams is the browse filter. Every field is optional; a zero value
// contributes nothing to the query. IsVerified holds either a bool or the
// strings "true"/"false"; anything else is ignored.
type SearchParams struct {
	Keyword      string      `json:"keyword,omitempty"`
	PropertyType string      `json:"propertyType,omitempty"`
	City         string      `json:"city,omitempty"`
	State        string      `json:"state,omitempty"`
	MinPrice     *float64    `json:"minPrice,omitempty"`
	MaxPrice     *float64    `json:"maxPrice,omitempty"`
	MinBedrooms  *float64    `json:"minBedrooms,omitempty"`
	MinBathrooms *float64    `json:"minBathrooms,omitempty"`
	MinAreaSqFt  *float64    `json:"minAreaSqFt,omitempty"`
	Amenities    string      `json:"amenities,omitempty"`
	Tags         string      `json:"tags,omitempty"`
	IsVerified   interface{} `json:"isVerified,omitempty"`
	Page         int         `json:"page,omitempty"`
	PageSize     int         `json:"pageSize,omitempty"`
}
