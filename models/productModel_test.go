package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func fullProductInput() ProductInput {
	return ProductInput{
		Name:            strPtr("Laptop Dell XPS 15"),
		Brand:           strPtr("Dell"),
		Model:           strPtr("XPS 15 9530"),
		Price:           intPtr(1000),
		DiscountPercent: intPtr(10),
		StockQuantity:   intPtr(5),
		Specs: SpecsInput{
			CPU:     strPtr("Intel Core i7-13700H"),
			RAM:     strPtr("16GB DDR5"),
			Storage: strPtr("512GB NVMe SSD"),
			Display: strPtr("15.6 inch FHD+"),
			GPU:     strPtr("NVIDIA RTX 4050"),
			Battery: strPtr("86Wh"),
			OS:      strPtr("Windows 11 Home"),
			Ports:   []string{"2x Thunderbolt 4", "USB-C 3.2"},
		},
	}
}

func TestComputeDiscountPrice(t *testing.T) {
	assert.Equal(t, 900.0, ComputeDiscountPrice(1000, 10))
	assert.Equal(t, 1000.0, ComputeDiscountPrice(1000, 0))
	assert.Equal(t, 0.0, ComputeDiscountPrice(1000, 100))
	assert.Equal(t, 0.0, ComputeDiscountPrice(0, 50))
	assert.Equal(t, 18747.75, ComputeDiscountPrice(24997, 25))
}

func TestValidateFullInputPasses(t *testing.T) {
	in := fullProductInput()
	assert.Empty(t, in.Validate(false))
}

func TestValidateCollectsAllMissingFields(t *testing.T) {
	in := ProductInput{}
	errs := in.Validate(false)

	// 6 scalar fields + 7 spec strings + ports
	assert.Len(t, errs, 14)
	assert.Contains(t, errs, "name is required")
	assert.Contains(t, errs, "price is required")
	assert.Contains(t, errs, "specs.cpu is required")
	assert.Contains(t, errs, "specs.ports is required")
}

func TestValidatePartialAllowsMissingFields(t *testing.T) {
	in := ProductInput{}
	assert.Empty(t, in.Validate(true))
}

func TestValidateRangeViolations(t *testing.T) {
	in := ProductInput{
		Price:           intPtr(-1),
		DiscountPercent: intPtr(101),
		StockQuantity:   intPtr(-5),
		Status:          strPtr("archived"),
	}
	errs := in.Validate(true)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "price must be greater than or equal to 0")
	assert.Contains(t, errs, "discount_percent must be between 0 and 100")
	assert.Contains(t, errs, "stock_quantity must be greater than or equal to 0")
	assert.Contains(t, errs, "status must be one of: available, sold_out, discontinued")
}

func TestValidateNestedOffers(t *testing.T) {
	in := ProductInput{
		VariantSpecs: []VariantSpec{{Name: "", DiscountPercent: 150}},
		Colors:       []Color{{Name: ""}},
	}
	errs := in.Validate(true)

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "variant_specs[0]: name is required")
	assert.Contains(t, errs, "variant_specs[0]: discount_percent must be between 0 and 100")
	assert.Contains(t, errs, "colors[0]: name is required")
}

func TestToProductDefaults(t *testing.T) {
	in := fullProductInput()
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	product := in.ToProduct(now)

	assert.Equal(t, 900.0, product.DiscountPrice)
	assert.Equal(t, StatusAvailable, product.Status)
	assert.NotNil(t, product.CategoryIDs)
	assert.Empty(t, product.CategoryIDs)
	assert.Equal(t, "Intel Core i7-13700H", product.Specs.CPU)
	assert.Equal(t, now, product.CreatedAt)
	assert.Equal(t, now, product.UpdatedAt)
}

func TestToProductKeepsSubmittedStatus(t *testing.T) {
	in := fullProductInput()
	in.Status = strPtr(StatusSoldOut)

	product := in.ToProduct(time.Now())
	assert.Equal(t, StatusSoldOut, product.Status)
}

func TestUpdateFieldsRecomputesDiscountPrice(t *testing.T) {
	existing := Product{Price: 1000, DiscountPercent: 10}
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	priceOnly := ProductInput{Price: intPtr(2000)}
	set := priceOnly.UpdateFields(existing, now)
	assert.Equal(t, 2000, set["price"])
	assert.Equal(t, 1800.0, set["discount_price"])
	assert.Equal(t, now, set["updated_at"])

	discountOnly := ProductInput{DiscountPercent: intPtr(50)}
	set = discountOnly.UpdateFields(existing, now)
	assert.Equal(t, 50, set["discount_percent"])
	assert.Equal(t, 500.0, set["discount_price"])
	assert.NotContains(t, set, "price")
}

func TestUpdateFieldsUntouchedPricingLeavesDiscountPriceAlone(t *testing.T) {
	in := ProductInput{Name: strPtr("Renamed")}
	set := in.UpdateFields(Product{Price: 1000, DiscountPercent: 10}, time.Now())

	assert.Equal(t, "Renamed", set["name"])
	assert.NotContains(t, set, "discount_price")
}

func TestUpdateFieldsDottedSpecsAndSetFlags(t *testing.T) {
	in := ProductInput{
		Specs:          SpecsInput{CPU: strPtr("AMD Ryzen 9 7940HS")},
		CategoryIDsSet: true,
		ColorsSet:      true,
		Colors:         []Color{{Name: "Black", Code: "#000000"}},
	}
	set := in.UpdateFields(Product{}, time.Now())

	assert.Equal(t, "AMD Ryzen 9 7940HS", set["specs.cpu"])
	assert.NotContains(t, set, "specs.ram")
	assert.Equal(t, []primitive.ObjectID{}, set["category_ids"])
	assert.Equal(t, []Color{{Name: "Black", Code: "#000000"}}, set["colors"])
}
