package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestNormalizeDefaults(t *testing.T) {
	params := SearchParams{}
	params.Normalize()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestNormalizeClampsAndRejectsUnknownSort(t *testing.T) {
	params := SearchParams{Page: -2, Limit: 500, SortBy: "name", SortOrder: "sideways"}
	params.Normalize()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	params := SearchParams{Page: 3, Limit: 25, SortBy: "price", SortOrder: "desc"}
	params.Normalize()

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, "price", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Equal(t, int64(50), params.Skip())
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, params.Sort())
}

func TestFilterEmpty(t *testing.T) {
	params := SearchParams{}
	params.Normalize()
	assert.Equal(t, bson.M{}, params.Filter())
}

func TestFilterSingleConditionIsNotWrapped(t *testing.T) {
	params := SearchParams{Brands: "Dell, Asus"}
	params.Normalize()

	filter := params.Filter()
	assert.Equal(t, bson.M{"brand": bson.M{"$in": []string{"Dell", "Asus"}}}, filter)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	params := SearchParams{Query: "xps", Status: "available"}
	params.Normalize()

	filter := params.Filter()
	conds, ok := filter["$and"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, conds, 2)

	// text search stays an $or across name/brand/model inside its own clause
	textConds, ok := conds[0]["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, textConds, 3)
	pattern, ok := textConds[0]["name"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "xps", pattern.Pattern)
	assert.Equal(t, "i", pattern.Options)

	assert.Equal(t, bson.M{"status": bson.M{"$in": []string{"available"}}}, conds[1])
}

func TestFilterQuotesRegexMetacharacters(t *testing.T) {
	params := SearchParams{Query: "i7 (13th)"}
	params.Normalize()

	filter := params.Filter()
	textConds := filter["$or"].([]bson.M)
	pattern := textConds[0]["name"].(primitive.Regex)
	assert.Equal(t, `i7 \(13th\)`, pattern.Pattern)
}

func TestFilterPriceRangePresence(t *testing.T) {
	params := SearchParams{MinPrice: intPtr(0), MaxPrice: intPtr(20000000)}
	params.Normalize()
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 0, "$lte": 20000000}}, params.Filter())

	open := SearchParams{MinDiscount: intPtr(10)}
	open.Normalize()
	assert.Equal(t, bson.M{"discount_percent": bson.M{"$gte": 10}}, open.Filter())
}

func TestFilterCategoryIDDuality(t *testing.T) {
	params := SearchParams{CategoryIDs: "6600a1c3b6f4a2d4e8f3b130"}
	params.Normalize()

	filter := params.Filter()
	catConds, ok := filter["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, catConds, 2)

	objIn := catConds[0]["category_ids"].(bson.M)["$in"].([]primitive.ObjectID)
	assert.Len(t, objIn, 1)
	assert.Equal(t, "6600a1c3b6f4a2d4e8f3b130", objIn[0].Hex())

	strIn := catConds[1]["category_ids"].(bson.M)["$in"].([]string)
	assert.Equal(t, []string{"6600a1c3b6f4a2d4e8f3b130"}, strIn)
}

func TestFilterCategoryLiteralTokenOnly(t *testing.T) {
	params := SearchParams{CategoryIDs: "gaming-laptops"}
	params.Normalize()

	filter := params.Filter()
	assert.Equal(t, bson.M{"category_ids": bson.M{"$in": []string{"gaming-laptops"}}}, filter)
}

func TestSplitCategoryTokens(t *testing.T) {
	objectIDs, stringIDs := SplitCategoryTokens("6600a1c3b6f4a2d4e8f3b130, gaming-laptops, ,ultrabooks")

	assert.Len(t, objectIDs, 1)
	assert.Equal(t, "6600a1c3b6f4a2d4e8f3b130", objectIDs[0].Hex())
	assert.Equal(t, []string{"6600a1c3b6f4a2d4e8f3b130", "gaming-laptops", "ultrabooks"}, stringIDs)
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.pages, TotalPages(tc.total, tc.limit))
	}
}
