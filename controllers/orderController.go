package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/models"
	"github.com/phamthangph13/Tech-Lap-Back-End/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create order",
			"errors":  []string{err.Error()},
		})
		return
	}

	order, warnings, validationErrs, err := oc.orders.CreateOrder(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create order",
			"errors":  []string{err.Error()},
		})
		return
	}
	if len(validationErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create order",
			"errors":  validationErrs,
		})
		return
	}

	response := gin.H{
		"success": true,
		"message": "Order created successfully",
		"data": gin.H{
			"orderId":     order.ID.Hex(),
			"orderNumber": order.OrderNumber,
			"items":       order.Summaries(),
			"subtotal":    order.Subtotal,
			"shippingFee": order.ShippingFee,
			"total":       order.Total,
			"status":      order.Status,
		},
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}

	ctx.JSON(http.StatusCreated, response)
}
