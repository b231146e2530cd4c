package services

import (
	"regexp"
	"strings"

	"github.com/phamthangph13/Tech-Lap-Back-End/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// SearchParams holds the decoded query parameters of a product search.
// Pointer range fields distinguish "absent" from a literal zero.
type SearchParams struct {
	Query       string
	MinPrice    *int
	MaxPrice    *int
	MinDiscount *int
	MaxDiscount *int
	Brands      string
	CategoryIDs string
	Status      string
	CPU         string
	RAM         string
	Storage     string
	GPU         string
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

var sortFields = map[string]bool{
	"price":            true,
	"discount_price":   true,
	"discount_percent": true,
	"created_at":       true,
}

// Normalize applies the paging and sorting defaults: page floored to 1,
// limit clamped to [1,100], sort_by defaulting to created_at ascending.
func (p *SearchParams) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if !sortFields[p.SortBy] {
		p.SortBy = "created_at"
	}
	if p.SortOrder != "desc" {
		p.SortOrder = "asc"
	}
}

// Skip returns the number of documents to skip for the current page.
func (p *SearchParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// Sort returns the Mongo sort specification.
func (p *SearchParams) Sort() bson.D {
	order := 1
	if p.SortOrder == "desc" {
		order = -1
	}
	return bson.D{{Key: p.SortBy, Value: order}}
}

// Filter builds the Mongo filter document. Every active filter ANDs with the
// others; within the category filter, id-shaped and literal-string tokens
// are ORed so test-seeded string ids keep working.
func (p *SearchParams) Filter() bson.M {
	var conds []bson.M

	if p.Query != "" {
		pattern := substring(p.Query)
		conds = append(conds, bson.M{"$or": []bson.M{
			{"name": pattern},
			{"brand": pattern},
			{"model": pattern},
		}})
	}

	if rangeDoc := rangeFilter(p.MinPrice, p.MaxPrice); rangeDoc != nil {
		conds = append(conds, bson.M{"price": rangeDoc})
	}
	if rangeDoc := rangeFilter(p.MinDiscount, p.MaxDiscount); rangeDoc != nil {
		conds = append(conds, bson.M{"discount_percent": rangeDoc})
	}

	if p.Brands != "" {
		conds = append(conds, bson.M{"brand": bson.M{"$in": splitCSV(p.Brands)}})
	}

	if p.CategoryIDs != "" {
		objectIDs, stringIDs := SplitCategoryTokens(p.CategoryIDs)
		var catConds []bson.M
		if len(objectIDs) > 0 {
			catConds = append(catConds, bson.M{"category_ids": bson.M{"$in": objectIDs}})
		}
		if len(stringIDs) > 0 {
			catConds = append(catConds, bson.M{"category_ids": bson.M{"$in": stringIDs}})
		}
		if len(catConds) == 1 {
			conds = append(conds, catConds[0])
		} else if len(catConds) > 1 {
			conds = append(conds, bson.M{"$or": catConds})
		}
	}

	if p.Status != "" {
		conds = append(conds, bson.M{"status": bson.M{"$in": splitCSV(p.Status)}})
	}

	specFilters := map[string]string{
		"specs.cpu":     p.CPU,
		"specs.ram":     p.RAM,
		"specs.storage": p.Storage,
		"specs.gpu":     p.GPU,
	}
	for field, term := range specFilters {
		if term != "" {
			conds = append(conds, bson.M{field: substring(term)})
		}
	}

	switch len(conds) {
	case 0:
		return bson.M{}
	case 1:
		return conds[0]
	default:
		return bson.M{"$and": conds}
	}
}

// SplitCategoryTokens classifies each comma-separated token as an id-shaped
// reference or a literal string. Valid ObjectID tokens land in both sets
// because seeded data may store either representation. Malformed tokens
// degrade to literal strings, never an error.
func SplitCategoryTokens(raw string) ([]primitive.ObjectID, []string) {
	var objectIDs []primitive.ObjectID
	var stringIDs []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if id, err := utils.ParseObjectID(token); err == nil {
			objectIDs = append(objectIDs, id)
		}
		stringIDs = append(stringIDs, token)
	}
	return objectIDs, stringIDs
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// substring builds a case-insensitive substring matcher. User input is
// quoted so regex metacharacters match literally.
func substring(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

func rangeFilter(min, max *int) bson.M {
	doc := bson.M{}
	if min != nil {
		doc["$gte"] = *min
	}
	if max != nil {
		doc["$lte"] = *max
	}
	if len(doc) == 0 {
		return nil
	}
	return doc
}

func splitCSV(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}
