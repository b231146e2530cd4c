package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/models"
	"github.com/phamthangph13/Tech-Lap-Back-End/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryController struct {
	categories *mongo.Collection
}

func NewCategoryController(db *mongo.Database) *CategoryController {
	return &CategoryController{categories: db.Collection("categories")}
}

func (cc *CategoryController) ListCategories(ctx *gin.Context) {
	cursor, err := cc.categories.Find(ctx.Request.Context(), bson.M{})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving categories", err)
		return
	}

	var categories []bson.M
	if err := cursor.All(ctx.Request.Context(), &categories); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving categories", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocuments(categories))
}

func (cc *CategoryController) CreateCategory(ctx *gin.Context) {
	input := parseCategoryForm(ctx)
	if errs := input.Validate(false); len(errs) > 0 {
		respondWithValidationErrors(ctx, errs)
		return
	}

	category := input.ToCategory(time.Now().UTC())
	result, err := cc.categories.InsertOne(ctx.Request.Context(), category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating category", err)
		return
	}

	var created bson.M
	if err := cc.categories.FindOne(ctx.Request.Context(), bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating category", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.FormatDocument(created))
}

func (cc *CategoryController) GetCategory(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid category ID format: %s", ctx.Param("id")), nil)
		return
	}

	var category bson.M
	err = cc.categories.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", ctx.Param("id")), nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving category", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocument(category))
}

func (cc *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid category ID format: %s", ctx.Param("id")), nil)
		return
	}

	count, err := cc.categories.CountDocuments(ctx.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating category", err)
		return
	}
	if count == 0 {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", ctx.Param("id")), nil)
		return
	}

	input := parseCategoryForm(ctx)
	if errs := input.Validate(true); len(errs) > 0 {
		respondWithValidationErrors(ctx, errs)
		return
	}

	set := input.UpdateFields(time.Now().UTC())
	if _, err := cc.categories.UpdateOne(ctx.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating category", err)
		return
	}

	var updated bson.M
	if err := cc.categories.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&updated); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating category", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocument(updated))
}

func (cc *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid category ID format: %s", ctx.Param("id")), nil)
		return
	}

	result, err := cc.categories.DeleteOne(ctx.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting category", err)
		return
	}
	if result.DeletedCount == 0 {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", ctx.Param("id")), nil)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseCategoryForm reads name/description form fields. A submitted but
// blank description clears the stored one.
func parseCategoryForm(ctx *gin.Context) *models.CategoryInput {
	input := &models.CategoryInput{}

	if name, ok := ctx.GetPostForm("name"); ok && strings.TrimSpace(name) != "" {
		input.Name = &name
	}
	if description, ok := ctx.GetPostForm("description"); ok {
		input.DescriptionSet = true
		if strings.TrimSpace(description) != "" {
			input.Description = &description
		}
	}

	return input
}
