package utils

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidObjectID reports whether s has the 24-hex-character ObjectID shape.
func IsValidObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// ParseObjectID converts a 24-hex-character string into an ObjectID. The
// shape is checked first so that malformed ids are rejected before any
// database lookup is issued.
func ParseObjectID(s string) (primitive.ObjectID, error) {
	if !IsValidObjectID(s) {
		return primitive.NilObjectID, fmt.Errorf("invalid ID format: %s", s)
	}
	return primitive.ObjectIDFromHex(s)
}
