package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/phamthangph13/Tech-Lap-Back-End/models"
	"github.com/phamthangph13/Tech-Lap-Back-End/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const orderNumberAttempts = 10

// OrderService is the order pricing engine: it resolves a cart against live
// catalog state, prices every line, and persists the resulting snapshot as a
// single insert.
type OrderService struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

func NewOrderService(db *mongo.Database) *OrderService {
	return &OrderService{
		products: db.Collection("products"),
		orders:   db.Collection("orders"),
	}
}

// CreateOrder validates and prices the cart, then inserts the order. All
// validation errors are collected before anything is rejected; if any are
// present nothing is persisted. Warnings report non-fatal variant/color
// substitutions on an otherwise successful order. A non-nil error means an
// infrastructure failure, not a validation one.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, []string, []string, error) {
	var validationErrs []string

	if req.Customer == nil {
		validationErrs = append(validationErrs, "Customer information is required")
	}
	if req.ShippingAddress == nil {
		validationErrs = append(validationErrs, "Shipping address is required")
	}
	if len(req.Items) == 0 {
		validationErrs = append(validationErrs, "Order must contain at least one item")
	}
	if req.Payment == nil || req.Payment.Method != models.PaymentMethodCOD {
		validationErrs = append(validationErrs, "Only COD payment method is supported")
	}
	if len(validationErrs) > 0 {
		return nil, nil, validationErrs, nil
	}

	var items []models.OrderItem
	var warnings []string
	var firstProduct *models.Product
	var subtotal, discountTotal float64

	for _, itemReq := range req.Items {
		productID, err := utils.ParseObjectID(itemReq.ProductID)
		if err != nil {
			validationErrs = append(validationErrs, fmt.Sprintf("Invalid product ID: %s", itemReq.ProductID))
			continue
		}

		var product models.Product
		err = s.products.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			validationErrs = append(validationErrs, fmt.Sprintf("Product not found: %s", itemReq.ProductID))
			continue
		}
		if err != nil {
			return nil, nil, nil, err
		}

		item, itemWarnings, itemErrs := PriceOrderItem(product, itemReq)
		if len(itemErrs) > 0 {
			validationErrs = append(validationErrs, itemErrs...)
			continue
		}
		warnings = append(warnings, itemWarnings...)

		subtotal += item.Subtotal
		discountTotal += (item.UnitPrice - item.DiscountedPrice) * float64(item.Quantity)
		if firstProduct == nil {
			p := product
			firstProduct = &p
		}
		items = append(items, item)
	}

	if len(validationErrs) > 0 {
		return nil, nil, validationErrs, nil
	}

	orderNumber, err := s.generateOrderNumber(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	now := time.Now()
	order := models.Order{
		OrderNumber:     orderNumber,
		Customer:        *req.Customer,
		ShippingAddress: *req.ShippingAddress,
		Items:           items,
		Payment: models.Payment{
			Method: req.Payment.Method,
			Status: models.PaymentStatusPending,
		},
		ProductInfo:   firstProduct.ProductInfo,
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		ShippingFee:   0,
		Total:         subtotal + 0,
		Status:        models.OrderStatusPending,
		OrderDate:     now,
		UpdatedAt:     now,
	}
	if order.ProductInfo == nil {
		order.ProductInfo = []models.ProductInfo{}
	}

	result, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, nil, nil, err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	return &order, warnings, nil, nil
}

// PriceOrderItem resolves one cart line against a product and prices it.
// Variant and color selection both follow the same two-tier policy: exact
// name match, else the first offer with a substitution warning, else a hard
// error when the product has no offers at all. A quantity of zero or less
// is coerced to one.
func PriceOrderItem(product models.Product, req models.OrderItemRequest) (models.OrderItem, []string, []string) {
	var warnings, errs []string

	variant, variantWarning, variantErr := resolveVariant(product, req.VariantName)
	if variantErr != "" {
		errs = append(errs, variantErr)
	} else if variantWarning != "" {
		warnings = append(warnings, variantWarning)
	}

	color, colorWarning, colorErr := resolveColor(product, req.ColorName)
	if colorErr != "" {
		errs = append(errs, colorErr)
	} else if colorWarning != "" {
		warnings = append(warnings, colorWarning)
	}

	if len(errs) > 0 {
		return models.OrderItem{}, nil, errs
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// unit_price builds on the raw base price; the product's own
	// discount_percent does not feed order lines.
	basePrice := float64(product.Price)
	unitPrice := basePrice + variant.Price + color.PriceAdjustment
	totalDiscountPercent := variant.DiscountPercent + color.DiscountAdjustment
	discountAmount := unitPrice * totalDiscountPercent / 100
	discountedPrice := unitPrice - discountAmount

	item := models.OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		BasePrice:   basePrice,

		VariantName:            variant.Name,
		VariantSpecs:           variant.Specs,
		VariantPrice:           variant.Price,
		VariantDiscountPercent: variant.DiscountPercent,

		ColorName:               color.Name,
		ColorCode:               color.Code,
		ColorPriceAdjustment:    color.PriceAdjustment,
		ColorDiscountAdjustment: color.DiscountAdjustment,

		Quantity: quantity,

		UnitPrice:       unitPrice,
		DiscountedPrice: discountedPrice,
		Subtotal:        discountedPrice * float64(quantity),

		Thumbnail: product.Thumbnail,
	}
	return item, warnings, nil
}

func resolveVariant(product models.Product, requested string) (models.VariantSpec, string, string) {
	for _, variant := range product.VariantSpecs {
		if variant.Name == requested {
			return variant, "", ""
		}
	}
	if len(product.VariantSpecs) > 0 {
		fallback := product.VariantSpecs[0]
		warning := fmt.Sprintf("Requested variant '%s' not available. Using '%s' instead.", requested, fallback.Name)
		return fallback, warning, ""
	}
	return models.VariantSpec{}, "", fmt.Sprintf("Requested variant '%s' not available for product %s", requested, product.Name)
}

func resolveColor(product models.Product, requested string) (models.Color, string, string) {
	for _, color := range product.Colors {
		if color.Name == requested {
			return color, "", ""
		}
	}
	if len(product.Colors) > 0 {
		fallback := product.Colors[0]
		warning := fmt.Sprintf("Requested color '%s' not available. Using '%s' instead.", requested, fallback.Name)
		return fallback, warning, ""
	}
	return models.Color{}, "", fmt.Sprintf("Requested color '%s' not available for product %s", requested, product.Name)
}

// FormatOrderNumber renders the human-readable order number for a given day
// and numeric suffix.
func FormatOrderNumber(t time.Time, suffix string) string {
	return fmt.Sprintf("TS-%s-%s", t.Format("20060102"), suffix)
}

// generateOrderNumber tries a bounded number of random 3-digit suffixes,
// checking each against existing orders. If every attempt collides it falls
// back to a nanosecond-derived suffix instead of recursing forever.
func (s *OrderService) generateOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		candidate := FormatOrderNumber(time.Now(), fmt.Sprintf("%03d", rand.Intn(1000)))
		count, err := s.orders.CountDocuments(ctx, bson.M{"orderNumber": candidate})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	now := time.Now()
	return FormatOrderNumber(now, fmt.Sprintf("%09d", now.UnixNano()%1_000_000_000)), nil
}
