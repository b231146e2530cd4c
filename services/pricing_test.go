package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/phamthangph13/Tech-Lap-Back-End/models"
	"github.com/stretchr/testify/assert"
)

func pricedProduct() models.Product {
	return models.Product{
		Name:            "Laptop Dell XPS 15",
		Price:           1000,
		DiscountPercent: 10,
		VariantSpecs: []models.VariantSpec{
			{Name: "16GB/512GB", Price: 200, DiscountPercent: 5},
			{Name: "32GB/1TB", Price: 600, DiscountPercent: 8},
		},
		Colors: []models.Color{
			{Name: "Silver", Code: "#C0C0C0", PriceAdjustment: 50, DiscountAdjustment: 0},
			{Name: "Black", Code: "#000000", PriceAdjustment: 0, DiscountAdjustment: 2},
		},
	}
}

func TestPriceOrderItemExactMatch(t *testing.T) {
	item, warnings, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
		VariantName: "16GB/512GB",
		ColorName:   "Silver",
		Quantity:    2,
	})

	assert.Empty(t, errs)
	assert.Empty(t, warnings)

	// 1000 base + 200 variant + 50 color = 1250, discounted by 5% = 1187.5
	assert.Equal(t, 1250.0, item.UnitPrice)
	assert.Equal(t, 1187.5, item.DiscountedPrice)
	assert.Equal(t, 2375.0, item.Subtotal)
	assert.Equal(t, 2, item.Quantity)

	assert.Equal(t, "Laptop Dell XPS 15", item.ProductName)
	assert.Equal(t, 1000.0, item.BasePrice)
	assert.Equal(t, "16GB/512GB", item.VariantName)
	assert.Equal(t, 200.0, item.VariantPrice)
	assert.Equal(t, 5.0, item.VariantDiscountPercent)
	assert.Equal(t, "Silver", item.ColorName)
	assert.Equal(t, "#C0C0C0", item.ColorCode)
	assert.Equal(t, 50.0, item.ColorPriceAdjustment)
}

func TestPriceOrderItemDiscountsStack(t *testing.T) {
	item, warnings, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
		VariantName: "32GB/1TB",
		ColorName:   "Black",
		Quantity:    1,
	})

	assert.Empty(t, errs)
	assert.Empty(t, warnings)

	// 1000 + 600 + 0 = 1600; variant 8% + color 2% = 10% off
	assert.Equal(t, 1600.0, item.UnitPrice)
	assert.Equal(t, 1440.0, item.DiscountedPrice)
	assert.Equal(t, 1440.0, item.Subtotal)
}

func TestPriceOrderItemBaseDiscountIgnored(t *testing.T) {
	// The product-level discount_percent (10 here) shapes the catalog
	// display price only; order lines start from the raw base price.
	item, _, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
		VariantName: "16GB/512GB",
		ColorName:   "Silver",
		Quantity:    1,
	})

	assert.Empty(t, errs)
	assert.Equal(t, 1000.0, item.BasePrice)
	assert.Equal(t, 1250.0, item.UnitPrice)
}

func TestPriceOrderItemVariantFallback(t *testing.T) {
	item, warnings, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
		VariantName: "64GB/2TB",
		ColorName:   "Silver",
		Quantity:    1,
	})

	assert.Empty(t, errs)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "Requested variant '64GB/2TB' not available. Using '16GB/512GB' instead.", warnings[0])
	assert.Equal(t, "16GB/512GB", item.VariantName)
}

func TestPriceOrderItemColorFallback(t *testing.T) {
	item, warnings, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
		VariantName: "16GB/512GB",
		ColorName:   "Rose Gold",
		Quantity:    1,
	})

	assert.Empty(t, errs)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "Requested color 'Rose Gold' not available. Using 'Silver' instead.", warnings[0])
	assert.Equal(t, "Silver", item.ColorName)
}

func TestPriceOrderItemNoOffersIsAnError(t *testing.T) {
	product := pricedProduct()
	product.VariantSpecs = nil
	product.Colors = nil

	_, warnings, errs := PriceOrderItem(product, models.OrderItemRequest{
		VariantName: "16GB/512GB",
		ColorName:   "Silver",
		Quantity:    1,
	})

	assert.Empty(t, warnings)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0], "variant '16GB/512GB' not available for product Laptop Dell XPS 15")
	assert.Contains(t, errs[1], "color 'Silver' not available for product Laptop Dell XPS 15")
}

func TestPriceOrderItemQuantityCoercedToOne(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		item, _, errs := PriceOrderItem(pricedProduct(), models.OrderItemRequest{
			VariantName: "16GB/512GB",
			ColorName:   "Silver",
			Quantity:    quantity,
		})
		assert.Empty(t, errs)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, item.DiscountedPrice, item.Subtotal)
	}
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "TS-20250314-042", FormatOrderNumber(day, "042"))
	assert.Regexp(t, regexp.MustCompile(`^TS-\d{8}-\d{3}$`), FormatOrderNumber(time.Now(), "007"))
}
