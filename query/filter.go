// Package query builds MongoDB filters for the property browser.
package query

import (
	"math"
	"regexp"
	"strings"

	"github.com/dcode-github/estate-envision/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AllTypes is the property type value meaning "no type filter".
const AllTypes = "all"

// BuildFilter returns one clause per populated parameter, joined with $and.
// With nothing populated the filter is empty and matches every document.
func BuildFilter(p models.SearchParams) bson.M {
	var conditions []bson.M

	if p.Keyword != "" {
		rx := containsRegex(p.Keyword)
		conditions = append(conditions, bson.M{"$or": bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
			bson.M{"location.address": rx},
		}})
	}

	if p.PropertyType != "" && p.PropertyType != AllTypes {
		conditions = append(conditions, bson.M{"type": p.PropertyType})
	}

	if p.City != "" {
		rx := containsRegex(p.City)
		conditions = append(conditions, bson.M{"$or": bson.A{
			bson.M{"location.city": rx},
			bson.M{"city": rx},
		}})
	}

	if p.State != "" {
		rx := containsRegex(p.State)
		conditions = append(conditions, bson.M{"$or": bson.A{
			bson.M{"location.state": rx},
			bson.M{"state": rx},
		}})
	}

	price := bson.M{}
	if v, ok := number(p.MinPrice); ok {
		price["$gte"] = v
	}
	if v, ok := number(p.MaxPrice); ok && v > 0 {
		price["$lte"] = v
	}
	if len(price) > 0 {
		conditions = append(conditions, bson.M{"price": price})
	}

	if v, ok := number(p.MinBedrooms); ok {
		conditions = append(conditions, bson.M{"bedrooms": bson.M{"$gte": v}})
	}
	if v, ok := number(p.MinBathrooms); ok {
		conditions = append(conditions, bson.M{"bathrooms": bson.M{"$gte": v}})
	}
	if v, ok := number(p.MinAreaSqFt); ok {
		conditions = append(conditions, bson.M{"areaSqFt": bson.M{"$gte": v}})
	}

	if c, ok := containsAll("amenities", p.Amenities); ok {
		conditions = append(conditions, c)
	}
	if c, ok := containsAll("tags", p.Tags); ok {
		conditions = append(conditions, c)
	}

	if verified, ok := CoerceBool(p.IsVerified); ok {
		conditions = append(conditions, bson.M{"isVerified": verified})
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

// CoerceBool accepts a bool or the strings "true"/"false" in any case.
func CoerceBool(v interface{}) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case *bool:
		if t == nil {
			return false, false
		}
		return *t, true
	case string:
		switch strings.ToLower(t) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// SplitTokens splits a comma separated parameter into lower-cased, non-empty tokens.
func SplitTokens(s string) []string {
	var tokens []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.ToLower(strings.TrimSpace(part)); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// containsAll requires every listed token to be an element of field, compared
// case-insensitively as whole values.
func containsAll(field, raw string) (bson.M, bool) {
	tokens := SplitTokens(raw)
	if len(tokens) == 0 {
		return nil, false
	}
	patterns := make(bson.A, 0, len(tokens))
	for _, token := range tokens {
		patterns = append(patterns, primitive.Regex{Pattern: "^" + regexp.QuoteMeta(token) + "$", Options: "i"})
	}
	return bson.M{field: bson.M{"$all": patterns}}, true
}

// containsRegex matches s literally as a case-insensitive substring.
func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func number(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// NewestFirst orders by creation time, then by id so equal timestamps page stably.
func NewestFirst() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
}

// FindOptions applies the newest-first sort and, when a page size is given,
// skip/limit for the requested one-based page.
func FindOptions(page, pageSize, maxPageSize int) *options.FindOptions {
	opts := options.Find().SetSort(NewestFirst())
	if pageSize <= 0 {
		return opts
	}
	if maxPageSize > 0 && pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return opts.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
}
