package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusAvailable    = "available"
	StatusSoldOut      = "sold_out"
	StatusDiscontinued = "discontinued"
)

// Specs is the fixed-shape laptop specification record.
type Specs struct {
	CPU     string   `json:"cpu" bson:"cpu"`
	RAM     string   `json:"ram" bson:"ram"`
	Storage string   `json:"storage" bson:"storage"`
	Display string   `json:"display" bson:"display"`
	GPU     string   `json:"gpu" bson:"gpu"`
	Battery string   `json:"battery" bson:"battery"`
	OS      string   `json:"os" bson:"os"`
	Ports   []string `json:"ports" bson:"ports"`
}

// VariantSpec is a named variant offer with its own specs and pricing.
type VariantSpec struct {
	Name            string  `json:"name" bson:"name"`
	Specs           Specs   `json:"specs" bson:"specs"`
	Price           float64 `json:"price" bson:"price"`
	DiscountPercent float64 `json:"discount_percent" bson:"discount_percent"`
}

// Color is a named color offer applied on top of a variant.
type Color struct {
	Name               string               `json:"name" bson:"name"`
	Code               string               `json:"code" bson:"code"`
	PriceAdjustment    float64              `json:"price_adjustment" bson:"price_adjustment"`
	DiscountAdjustment float64              `json:"discount_adjustment" bson:"discount_adjustment"`
	Images             []primitive.ObjectID `json:"images,omitempty" bson:"images,omitempty"`
}

// ProductInfo is a titled free-text content block shown on the product page.
type ProductInfo struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
}

type Product struct {
	ID              primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Brand           string               `json:"brand" bson:"brand"`
	Model           string               `json:"model" bson:"model"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	Price           int                  `json:"price" bson:"price"`
	DiscountPercent int                  `json:"discount_percent" bson:"discount_percent"`
	DiscountPrice   float64              `json:"discount_price" bson:"discount_price"`
	Specs           Specs                `json:"specs" bson:"specs"`
	StockQuantity   int                  `json:"stock_quantity" bson:"stock_quantity"`
	CategoryIDs     []primitive.ObjectID `json:"category_ids" bson:"category_ids"`
	Status          string               `json:"status" bson:"status"`
	Thumbnail       primitive.ObjectID   `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Images          []primitive.ObjectID `json:"images,omitempty" bson:"images,omitempty"`
	Videos          []primitive.ObjectID `json:"videos,omitempty" bson:"videos,omitempty"`
	VariantSpecs    []VariantSpec        `json:"variant_specs,omitempty" bson:"variant_specs,omitempty"`
	Colors          []Color              `json:"colors,omitempty" bson:"colors,omitempty"`
	ProductInfo     []ProductInfo        `json:"product_info,omitempty" bson:"product_info,omitempty"`
	Highlights      []string             `json:"highlights,omitempty" bson:"highlights,omitempty"`
	CreatedAt       time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at" bson:"updated_at"`
}

// ComputeDiscountPrice derives the catalog display price from the base price
// and discount percentage. It is recomputed on every write that touches
// either field and is never independently settable.
func ComputeDiscountPrice(price, discountPercent int) float64 {
	return float64(price) - float64(price)*float64(discountPercent)/100
}

// SpecsInput carries the specs.* form fields of a create or update request.
// Nil fields were not submitted.
type SpecsInput struct {
	CPU     *string
	RAM     *string
	Storage *string
	Display *string
	GPU     *string
	Battery *string
	OS      *string
	Ports   []string
}

// ProductInput is the typed form of a product create/update request. Nil
// pointer fields (and false *Set flags for slices) mean the field was not
// submitted, which matters for partial updates.
type ProductInput struct {
	Name            *string
	Brand           *string
	Model           *string
	Description     *string
	Price           *int
	DiscountPercent *int
	StockQuantity   *int
	Status          *string
	Specs           SpecsInput
	CategoryIDs     []primitive.ObjectID
	CategoryIDsSet  bool
	VariantSpecs    []VariantSpec
	VariantSpecsSet bool
	Colors          []Color
	ColorsSet       bool
	ProductInfo     []ProductInfo
	ProductInfoSet  bool
	Highlights      []string
	HighlightsSet   bool
}

// Validate checks the whole input in one pass and returns every violation.
// With partial set, missing fields are allowed and only submitted values are
// checked, which is the update semantics.
func (in *ProductInput) Validate(partial bool) []string {
	var errs []string

	if !partial {
		if in.Name == nil {
			errs = append(errs, "name is required")
		}
		if in.Brand == nil {
			errs = append(errs, "brand is required")
		}
		if in.Model == nil {
			errs = append(errs, "model is required")
		}
		if in.Price == nil {
			errs = append(errs, "price is required")
		}
		if in.DiscountPercent == nil {
			errs = append(errs, "discount_percent is required")
		}
		if in.StockQuantity == nil {
			errs = append(errs, "stock_quantity is required")
		}
		errs = append(errs, in.Specs.validateRequired()...)
	}

	if in.Price != nil && *in.Price < 0 {
		errs = append(errs, "price must be greater than or equal to 0")
	}
	if in.DiscountPercent != nil && (*in.DiscountPercent < 0 || *in.DiscountPercent > 100) {
		errs = append(errs, "discount_percent must be between 0 and 100")
	}
	if in.StockQuantity != nil && *in.StockQuantity < 0 {
		errs = append(errs, "stock_quantity must be greater than or equal to 0")
	}
	if in.Status != nil && !validStatus(*in.Status) {
		errs = append(errs, fmt.Sprintf("status must be one of: %s, %s, %s", StatusAvailable, StatusSoldOut, StatusDiscontinued))
	}

	for i, variant := range in.VariantSpecs {
		if variant.Name == "" {
			errs = append(errs, fmt.Sprintf("variant_specs[%d]: name is required", i))
		}
		if variant.DiscountPercent < 0 || variant.DiscountPercent > 100 {
			errs = append(errs, fmt.Sprintf("variant_specs[%d]: discount_percent must be between 0 and 100", i))
		}
	}
	for i, color := range in.Colors {
		if color.Name == "" {
			errs = append(errs, fmt.Sprintf("colors[%d]: name is required", i))
		}
	}

	return errs
}

func (s SpecsInput) validateRequired() []string {
	var errs []string
	fields := []struct {
		name  string
		value *string
	}{
		{"specs.cpu", s.CPU},
		{"specs.ram", s.RAM},
		{"specs.storage", s.Storage},
		{"specs.display", s.Display},
		{"specs.gpu", s.GPU},
		{"specs.battery", s.Battery},
		{"specs.os", s.OS},
	}
	for _, field := range fields {
		if field.value == nil {
			errs = append(errs, field.name+" is required")
		}
	}
	if s.Ports == nil {
		errs = append(errs, "specs.ports is required")
	}
	return errs
}

func validStatus(status string) bool {
	return status == StatusAvailable || status == StatusSoldOut || status == StatusDiscontinued
}

// ToProduct builds the document for a create request. Validate must have
// passed first.
func (in *ProductInput) ToProduct(now time.Time) Product {
	product := Product{
		Name:            *in.Name,
		Brand:           *in.Brand,
		Model:           *in.Model,
		Price:           *in.Price,
		DiscountPercent: *in.DiscountPercent,
		DiscountPrice:   ComputeDiscountPrice(*in.Price, *in.DiscountPercent),
		StockQuantity:   *in.StockQuantity,
		CategoryIDs:     in.CategoryIDs,
		Status:          StatusAvailable,
		VariantSpecs:    in.VariantSpecs,
		Colors:          in.Colors,
		ProductInfo:     in.ProductInfo,
		Highlights:      in.Highlights,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if product.CategoryIDs == nil {
		product.CategoryIDs = []primitive.ObjectID{}
	}
	product.Specs = Specs{
		CPU:     *in.Specs.CPU,
		RAM:     *in.Specs.RAM,
		Storage: *in.Specs.Storage,
		Display: *in.Specs.Display,
		GPU:     *in.Specs.GPU,
		Battery: *in.Specs.Battery,
		OS:      *in.Specs.OS,
		Ports:   in.Specs.Ports,
	}
	return product
}

// UpdateFields builds the $set document for a partial update against the
// current state of the product. discount_price is kept consistent whenever
// price or discount_percent changes.
func (in *ProductInput) UpdateFields(existing Product, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Brand != nil {
		set["brand"] = *in.Brand
	}
	if in.Model != nil {
		set["model"] = *in.Model
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.StockQuantity != nil {
		set["stock_quantity"] = *in.StockQuantity
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.CategoryIDsSet {
		ids := in.CategoryIDs
		if ids == nil {
			ids = []primitive.ObjectID{}
		}
		set["category_ids"] = ids
	}
	if in.VariantSpecsSet {
		set["variant_specs"] = in.VariantSpecs
	}
	if in.ColorsSet {
		set["colors"] = in.Colors
	}
	if in.ProductInfoSet {
		set["product_info"] = in.ProductInfo
	}
	if in.HighlightsSet {
		set["highlights"] = in.Highlights
	}

	if in.Specs.CPU != nil {
		set["specs.cpu"] = *in.Specs.CPU
	}
	if in.Specs.RAM != nil {
		set["specs.ram"] = *in.Specs.RAM
	}
	if in.Specs.Storage != nil {
		set["specs.storage"] = *in.Specs.Storage
	}
	if in.Specs.Display != nil {
		set["specs.display"] = *in.Specs.Display
	}
	if in.Specs.GPU != nil {
		set["specs.gpu"] = *in.Specs.GPU
	}
	if in.Specs.Battery != nil {
		set["specs.battery"] = *in.Specs.Battery
	}
	if in.Specs.OS != nil {
		set["specs.os"] = *in.Specs.OS
	}
	if in.Specs.Ports != nil {
		set["specs.ports"] = in.Specs.Ports
	}

	if in.Price != nil || in.DiscountPercent != nil {
		price := existing.Price
		discount := existing.DiscountPercent
		if in.Price != nil {
			price = *in.Price
			set["price"] = price
		}
		if in.DiscountPercent != nil {
			discount = *in.DiscountPercent
			set["discount_percent"] = discount
		}
		set["discount_price"] = ComputeDiscountPrice(price, discount)
	}

	return set
}
