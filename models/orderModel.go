package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "COD"

const (
	OrderStatusPending   = "pending"
	PaymentStatusPending = "pending"
)

type Customer struct {
	FullName string `json:"fullName" bson:"fullName"`
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email"`
}

type ShippingAddress struct {
	Province      string `json:"province" bson:"province"`
	District      string `json:"district" bson:"district"`
	Ward          string `json:"ward" bson:"ward"`
	StreetAddress string `json:"streetAddress" bson:"streetAddress"`
}

type Payment struct {
	Method string `json:"method" bson:"method"`
	Status string `json:"status" bson:"status"`
}

// OrderItemRequest is one cart line as submitted by the client.
type OrderItemRequest struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	VariantName string `json:"variantName"`
	ColorName   string `json:"colorName"`
}

// CreateOrderRequest is the create-order payload. Pointer fields let the
// pricing engine distinguish a missing section from an empty one.
type CreateOrderRequest struct {
	Customer        *Customer          `json:"customer"`
	ShippingAddress *ShippingAddress   `json:"shippingAddress"`
	Items           []OrderItemRequest `json:"items"`
	Payment         *Payment           `json:"payment"`
}

// OrderItem is a priced line snapshot. Everything needed to display and
// account for the line is frozen at order-creation time; it never refers
// back to live product pricing.
type OrderItem struct {
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
	BasePrice   float64            `json:"basePrice" bson:"basePrice"`

	VariantName            string  `json:"variantName" bson:"variantName"`
	VariantSpecs           Specs   `json:"variantSpecs" bson:"variantSpecs"`
	VariantPrice           float64 `json:"variantPrice" bson:"variantPrice"`
	VariantDiscountPercent float64 `json:"variantDiscountPercent" bson:"variantDiscountPercent"`

	ColorName               string  `json:"colorName" bson:"colorName"`
	ColorCode               string  `json:"colorCode" bson:"colorCode"`
	ColorPriceAdjustment    float64 `json:"colorPriceAdjustment" bson:"colorPriceAdjustment"`
	ColorDiscountAdjustment float64 `json:"colorDiscountAdjustment" bson:"colorDiscountAdjustment"`

	Quantity int `json:"quantity" bson:"quantity"`

	UnitPrice       float64 `json:"unitPrice" bson:"unitPrice"`
	DiscountedPrice float64 `json:"discountedPrice" bson:"discountedPrice"`
	Subtotal        float64 `json:"subtotal" bson:"subtotal"`

	Thumbnail primitive.ObjectID `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// Order is an immutable priced record; only status transitions may touch it
// after creation.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderNumber     string             `json:"orderNumber" bson:"orderNumber"`
	Customer        Customer           `json:"customer" bson:"customer"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shippingAddress"`
	Items           []OrderItem        `json:"items" bson:"items"`
	Payment         Payment            `json:"payment" bson:"payment"`
	ProductInfo     []ProductInfo      `json:"productInfo" bson:"productInfo"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`
	DiscountTotal   float64            `json:"discountTotal" bson:"discountTotal"`
	ShippingFee     float64            `json:"shippingFee" bson:"shippingFee"`
	Total           float64            `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	OrderDate       time.Time          `json:"orderDate" bson:"orderDate"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderItemSummary is the per-line shape returned to the client after a
// successful create.
type OrderItemSummary struct {
	ProductName     string  `json:"productName"`
	VariantName     string  `json:"variantName"`
	ColorName       string  `json:"colorName"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Subtotal        float64 `json:"subtotal"`
}

// Summaries flattens the order lines for the create-order response.
func (o *Order) Summaries() []OrderItemSummary {
	summaries := make([]OrderItemSummary, 0, len(o.Items))
	for _, item := range o.Items {
		summaries = append(summaries, OrderItemSummary{
			ProductName:     item.ProductName,
			VariantName:     item.VariantName,
			ColorName:       item.ColorName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: item.DiscountedPrice,
			Subtotal:        item.Subtotal,
		})
	}
	return summaries
}
