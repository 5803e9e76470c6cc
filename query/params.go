package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dcode-github/estate-envision/models"
)

// ParseSearchParams reads browse parameters from a query string. Numbers that
// do not parse are dropped rather than rejected.
func ParseSearchParams(values url.Values) models.SearchParams {
	p := models.SearchParams{
		Keyword:      strings.TrimSpace(values.Get("keyword")),
		PropertyType: strings.TrimSpace(values.Get("propertyType")),
		City:         strings.TrimSpace(values.Get("city")),
		State:        strings.TrimSpace(values.Get("state")),
		MinPrice:     parseFloat(values.Get("minPrice")),
		MaxPrice:     parseFloat(values.Get("maxPrice")),
		MinBedrooms:  parseFloat(values.Get("minBedrooms")),
		MinBathrooms: parseFloat(values.Get("minBathrooms")),
		MinAreaSqFt:  parseFloat(values.Get("minAreaSqFt")),
		Amenities:    values.Get("amenities"),
		Tags:         values.Get("tags"),
		Page:         parseInt(values.Get("page")),
		PageSize:     parseInt(values.Get("pageSize")),
	}
	if v := values.Get("isVerified"); v != "" {
		p.IsVerified = v
	}
	return p
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
