package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormatDocument(t *testing.T) {
	id := primitive.NewObjectID()
	thumbnail := primitive.NewObjectID()
	imageA := primitive.NewObjectID()
	imageB := primitive.NewObjectID()
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	doc := bson.M{
		"_id":        id,
		"name":       "Laptop Dell XPS 15",
		"price":      int32(35000000),
		"thumbnail":  thumbnail,
		"images":     primitive.A{imageA, imageB},
		"created_at": primitive.NewDateTimeFromTime(created),
		"specs":      bson.M{"cpu": "Intel Core i7-13700H"},
		"variant_specs": primitive.A{
			bson.M{"name": "16GB", "price": 200.0},
		},
	}

	formatted := FormatDocument(doc)

	assert.Equal(t, id.Hex(), formatted["_id"])
	assert.Equal(t, "Laptop Dell XPS 15", formatted["name"])
	assert.Equal(t, int32(35000000), formatted["price"])
	assert.Equal(t, thumbnail.Hex(), formatted["thumbnail"])
	assert.Equal(t, []interface{}{imageA.Hex(), imageB.Hex()}, formatted["images"])
	assert.Equal(t, "2025-03-14T09:26:53Z", formatted["created_at"])
	assert.Equal(t, bson.M{"cpu": "Intel Core i7-13700H"}, formatted["specs"])
	assert.Equal(t, []interface{}{bson.M{"name": "16GB", "price": 200.0}}, formatted["variant_specs"])
}

func TestFormatDocumentHandlesNativeTime(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	formatted := FormatDocument(bson.M{"updated_at": updated})
	assert.Equal(t, "2025-06-01T12:00:00Z", formatted["updated_at"])
}

func TestFormatDocumentIsIdempotent(t *testing.T) {
	doc := bson.M{
		"_id":        primitive.NewObjectID(),
		"created_at": primitive.NewDateTimeFromTime(time.Now()),
		"nested":     bson.M{"thumbnail": primitive.NewObjectID()},
		"images":     primitive.A{primitive.NewObjectID()},
	}

	once := FormatDocument(doc)
	twice := FormatDocument(once)
	assert.Equal(t, once, twice)
}

func TestFormatDocumentNil(t *testing.T) {
	assert.Nil(t, FormatDocument(nil))
}

func TestFormatDocuments(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	formatted := FormatDocuments([]bson.M{{"_id": a}, {"_id": b}})
	assert.Equal(t, []bson.M{{"_id": a.Hex()}, {"_id": b.Hex()}}, formatted)
}
