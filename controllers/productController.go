package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/models"
	"github.com/phamthangph13/Tech-Lap-Back-End/storage"
	"github.com/phamthangph13/Tech-Lap-Back-End/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func respondWithValidationErrors(ctx *gin.Context, errs []string) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"errors":  errs,
	})
}

type ProductController struct {
	products   *mongo.Collection
	categories *mongo.Collection
	blobs      storage.BlobStore
}

func NewProductController(db *mongo.Database, blobs storage.BlobStore) *ProductController {
	return &ProductController{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
		blobs:      blobs,
	}
}

func (pc *ProductController) ListProducts(ctx *gin.Context) {
	cursor, err := pc.products.Find(ctx.Request.Context(), bson.M{})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving products", err)
		return
	}

	var products []bson.M
	if err := cursor.All(ctx.Request.Context(), &products); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving products", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocuments(products))
}

func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	input, errs := parseProductForm(form.Value)
	errs = append(errs, input.Validate(false)...)
	if len(errs) > 0 {
		respondWithValidationErrors(ctx, errs)
		return
	}

	if !pc.checkCategories(ctx, input) {
		return
	}

	product := input.ToProduct(time.Now().UTC())

	if thumbnails := form.File["thumbnail"]; len(thumbnails) > 0 {
		id, err := pc.saveUpload(ctx, thumbnails[0])
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error creating product", err)
			return
		}
		product.Thumbnail = id
	}

	images, err := pc.saveUploads(ctx, form.File["images"])
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating product", err)
		return
	}
	product.Images = images

	videos, err := pc.saveUploads(ctx, form.File["videos"])
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating product", err)
		return
	}
	product.Videos = videos

	result, err := pc.products.InsertOne(ctx.Request.Context(), product)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	var created bson.M
	if err := pc.products.FindOne(ctx.Request.Context(), bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.FormatDocument(created))
}

func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid product ID format: %s", ctx.Param("id")), nil)
		return
	}

	var product bson.M
	err = pc.products.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", ctx.Param("id")), nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving product", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocument(product))
}

func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid product ID format: %s", ctx.Param("id")), nil)
		return
	}

	var existing models.Product
	err = pc.products.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", ctx.Param("id")), nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	input, errs := parseProductForm(form.Value)
	errs = append(errs, input.Validate(true)...)
	if len(errs) > 0 {
		respondWithValidationErrors(ctx, errs)
		return
	}

	if input.CategoryIDsSet && !pc.checkCategories(ctx, input) {
		return
	}

	set := input.UpdateFields(existing, time.Now().UTC())

	// Replaced media deletes the old blobs first. A failure to delete is
	// logged, not fatal: the new upload still proceeds.
	if thumbnails := form.File["thumbnail"]; len(thumbnails) > 0 {
		if !existing.Thumbnail.IsZero() {
			pc.deleteBlob(ctx, existing.Thumbnail)
		}
		blobID, err := pc.saveUpload(ctx, thumbnails[0])
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
			return
		}
		set["thumbnail"] = blobID
	}

	if files := form.File["images"]; len(files) > 0 {
		for _, old := range existing.Images {
			pc.deleteBlob(ctx, old)
		}
		ids, err := pc.saveUploads(ctx, files)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
			return
		}
		set["images"] = ids
	}

	if files := form.File["videos"]; len(files) > 0 {
		for _, old := range existing.Videos {
			pc.deleteBlob(ctx, old)
		}
		ids, err := pc.saveUploads(ctx, files)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
			return
		}
		set["videos"] = ids
	}

	if _, err := pc.products.UpdateOne(ctx.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	var updated bson.M
	if err := pc.products.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&updated); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error updating product", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.FormatDocument(updated))
}

func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid product ID format: %s", ctx.Param("id")), nil)
		return
	}

	var product models.Product
	err = pc.products.FindOne(ctx.Request.Context(), bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", ctx.Param("id")), nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting product", err)
		return
	}

	// Owned media goes first: thumbnail, gallery images, videos and any
	// color-specific images.
	if !product.Thumbnail.IsZero() {
		pc.deleteBlob(ctx, product.Thumbnail)
	}
	for _, imageID := range product.Images {
		pc.deleteBlob(ctx, imageID)
	}
	for _, videoID := range product.Videos {
		pc.deleteBlob(ctx, videoID)
	}
	for _, color := range product.Colors {
		for _, imageID := range color.Images {
			pc.deleteBlob(ctx, imageID)
		}
	}

	if _, err := pc.products.DeleteOne(ctx.Request.Context(), bson.M{"_id": id}); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error deleting product", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (pc *ProductController) GetProductFile(ctx *gin.Context) {
	id, err := utils.ParseObjectID(ctx.Param("fileId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid file ID format: %s", ctx.Param("fileId")), nil)
		return
	}

	stream, info, err := pc.blobs.Get(ctx.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondWithError(ctx, http.StatusNotFound, fmt.Sprintf("File with ID %s not found", ctx.Param("fileId")), nil)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Error retrieving file", err)
		return
	}
	defer stream.Close()

	ctx.DataFromReader(http.StatusOK, info.Length, info.ContentType, stream, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", info.Filename),
	})
}

// checkCategories verifies that every referenced category id is well-formed
// and exists. Responds and returns false on the first failure.
func (pc *ProductController) checkCategories(ctx *gin.Context, input *models.ProductInput) bool {
	for _, id := range input.CategoryIDs {
		count, err := pc.categories.CountDocuments(ctx.Request.Context(), bson.M{"_id": id})
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
			return false
		}
		if count == 0 {
			respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Category with ID %s not found", id.Hex()), nil)
			return false
		}
	}
	return true
}

func (pc *ProductController) saveUpload(ctx *gin.Context, header *multipart.FileHeader) (primitive.ObjectID, error) {
	file, err := header.Open()
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return pc.blobs.Put(ctx.Request.Context(), data, header.Filename, header.Header.Get("Content-Type"))
}

func (pc *ProductController) saveUploads(ctx *gin.Context, headers []*multipart.FileHeader) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, header := range headers {
		if header.Filename == "" {
			continue
		}
		id, err := pc.saveUpload(ctx, header)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (pc *ProductController) deleteBlob(ctx *gin.Context, id primitive.ObjectID) {
	if err := pc.blobs.Delete(ctx.Request.Context(), id); err != nil {
		log.Printf("Error deleting file %s: %v", id.Hex(), err)
	}
}

// parseProductForm decodes the multipart form values into a typed input.
// Scalar fields come in as plain form values, specs.* as dotted fields
// (ports and highlights repeatable), category_ids repeatable, and the
// variant/color/info blocks as JSON-encoded fields.
func parseProductForm(values map[string][]string) (*models.ProductInput, []string) {
	input := &models.ProductInput{}
	var errs []string

	first := func(key string) (string, bool) {
		list, ok := values[key]
		if !ok || len(list) == 0 {
			return "", false
		}
		return list[0], true
	}

	setString := func(key string, target **string) {
		if value, ok := first(key); ok {
			v := value
			*target = &v
		}
	}
	setInt := func(key string, target **int) {
		value, ok := first(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be an integer", key))
			return
		}
		*target = &n
	}

	setString("name", &input.Name)
	setString("brand", &input.Brand)
	setString("model", &input.Model)
	setString("description", &input.Description)
	setString("status", &input.Status)
	setInt("price", &input.Price)
	setInt("discount_percent", &input.DiscountPercent)
	setInt("stock_quantity", &input.StockQuantity)

	setString("specs.cpu", &input.Specs.CPU)
	setString("specs.ram", &input.Specs.RAM)
	setString("specs.storage", &input.Specs.Storage)
	setString("specs.display", &input.Specs.Display)
	setString("specs.gpu", &input.Specs.GPU)
	setString("specs.battery", &input.Specs.Battery)
	setString("specs.os", &input.Specs.OS)
	if ports, ok := values["specs.ports"]; ok {
		input.Specs.Ports = ports
	}

	if ids, ok := values["category_ids"]; ok {
		input.CategoryIDsSet = true
		for _, raw := range ids {
			if raw == "" {
				continue
			}
			id, err := utils.ParseObjectID(raw)
			if err != nil {
				errs = append(errs, fmt.Sprintf("Invalid category ID format: %s", raw))
				continue
			}
			input.CategoryIDs = append(input.CategoryIDs, id)
		}
	}

	if raw, ok := first("variant_specs"); ok {
		input.VariantSpecsSet = true
		if err := json.Unmarshal([]byte(raw), &input.VariantSpecs); err != nil {
			errs = append(errs, "variant_specs must be a valid JSON array")
		}
	}
	if raw, ok := first("colors"); ok {
		input.ColorsSet = true
		if err := json.Unmarshal([]byte(raw), &input.Colors); err != nil {
			errs = append(errs, "colors must be a valid JSON array")
		}
	}
	if raw, ok := first("product_info"); ok {
		input.ProductInfoSet = true
		if err := json.Unmarshal([]byte(raw), &input.ProductInfo); err != nil {
			errs = append(errs, "product_info must be a valid JSON array")
		}
	}
	if highlights, ok := values["highlights"]; ok {
		input.HighlightsSet = true
		input.Highlights = highlights
	}

	return input, errs
}
