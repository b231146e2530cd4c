package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/services"
	"github.com/phamthangph13/Tech-Lap-Back-End/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SearchController struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewSearchController(db *mongo.Database) *SearchController {
	return &SearchController{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

// SearchProducts runs the faceted product search and returns one page of
// formatted results plus pagination metadata.
func (sc *SearchController) SearchProducts(ctx *gin.Context) {
	params := parseSearchParams(ctx)
	params.Normalize()

	filter := params.Filter()

	total, err := sc.products.CountDocuments(ctx.Request.Context(), filter)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error searching products", err)
		return
	}

	findOpts := options.Find().
		SetSkip(params.Skip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.Sort())

	cursor, err := sc.products.Find(ctx.Request.Context(), filter, findOpts)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error searching products", err)
		return
	}

	var products []bson.M
	if err := cursor.All(ctx.Request.Context(), &products); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error searching products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
		"pages":    services.TotalPages(total, params.Limit),
		"products": utils.FormatDocuments(products),
	})
}

// GetBrands lists the distinct brands currently in the catalog.
func (sc *SearchController) GetBrands(ctx *gin.Context) {
	brands, err := sc.products.Distinct(ctx.Request.Context(), "brand", bson.M{})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving brands", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GetPriceRange reports the lowest and highest product price for the filter UI.
func (sc *SearchController) GetPriceRange(ctx *gin.Context) {
	var cheapest, dearest struct {
		Price int `bson:"price"`
	}

	err := sc.products.FindOne(ctx.Request.Context(), bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "price", Value: 1}})).Decode(&cheapest)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving price range", err)
		return
	}

	err = sc.products.FindOne(ctx.Request.Context(), bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "price", Value: -1}})).Decode(&dearest)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving price range", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"min_price": cheapest.Price,
		"max_price": dearest.Price,
	})
}

// GetFilterOptions gathers every distinct value of the filterable fields,
// always live against the store.
func (sc *SearchController) GetFilterOptions(ctx *gin.Context) {
	specs := gin.H{}
	for _, field := range []string{"cpu", "ram", "storage", "gpu", "display", "os"} {
		values, err := sc.products.Distinct(ctx.Request.Context(), "specs."+field, bson.M{})
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error retrieving filter options", err)
			return
		}
		specs[field] = values
	}

	statuses, err := sc.products.Distinct(ctx.Request.Context(), "status", bson.M{})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving filter options", err)
		return
	}

	cursor, err := sc.categories.Find(ctx.Request.Context(), bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1, "name": 1}))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving filter options", err)
		return
	}

	var categories []struct {
		ID   interface{} `bson:"_id"`
		Name string      `bson:"name"`
	}
	if err := cursor.All(ctx.Request.Context(), &categories); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving filter options", err)
		return
	}

	categoryOptions := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		formatted := utils.FormatDocument(bson.M{"_id": category.ID})
		categoryOptions = append(categoryOptions, gin.H{
			"id":   formatted["_id"],
			"name": category.Name,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"specs":      specs,
		"status":     statuses,
		"categories": categoryOptions,
	})
}

func parseSearchParams(ctx *gin.Context) *services.SearchParams {
	params := &services.SearchParams{
		Query:       ctx.Query("query"),
		Brands:      ctx.Query("brands"),
		CategoryIDs: ctx.Query("category_ids"),
		Status:      ctx.Query("status"),
		CPU:         ctx.Query("cpu"),
		RAM:         ctx.Query("ram"),
		Storage:     ctx.Query("storage"),
		GPU:         ctx.Query("gpu"),
		SortBy:      ctx.Query("sort_by"),
		SortOrder:   ctx.Query("sort_order"),
	}

	params.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	params.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	params.MinPrice = queryInt(ctx, "min_price")
	params.MaxPrice = queryInt(ctx, "max_price")
	params.MinDiscount = queryInt(ctx, "min_discount")
	params.MaxDiscount = queryInt(ctx, "max_discount")

	return params
}

func queryInt(ctx *gin.Context, key string) *int {
	raw, ok := ctx.GetQuery(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
