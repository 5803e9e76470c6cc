package utils

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	externalIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,64}$`)
	hexColorPattern   = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)
)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidObjectID reports whether id is a 24 character hex ObjectID.
func IsValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// IsValidExternalID checks an owner-chosen listing id such as "PROP1000".
func IsValidExternalID(id string) bool {
	return externalIDPattern.MatchString(id)
}

func IsValidHexColor(c string) bool {
	return hexColorPattern.MatchString(c)
}

func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
