package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormatDocument normalizes a raw Mongo document for transport: ObjectIDs
// become hex strings and timestamps become RFC3339 strings, recursively
// through nested documents and arrays. Formatting an already formatted
// document is a no-op.
func FormatDocument(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for key, value := range doc {
		out[key] = formatValue(value)
	}
	return out
}

// FormatDocuments applies FormatDocument to every element of a result page.
func FormatDocuments(docs []bson.M) []bson.M {
	formatted := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		formatted = append(formatted, FormatDocument(doc))
	}
	return formatted
}

func formatValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case bson.M:
		return FormatDocument(v)
	case map[string]interface{}:
		return FormatDocument(bson.M(v))
	case bson.D:
		return FormatDocument(v.Map())
	case primitive.A:
		return formatSlice(v)
	case []interface{}:
		return formatSlice(v)
	case []bson.M:
		return FormatDocuments(v)
	default:
		return value
	}
}

func formatSlice(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = formatValue(value)
	}
	return out
}
