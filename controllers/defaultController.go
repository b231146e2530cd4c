package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Tech-Lap API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- GET "/api/products" - Get all products
- POST "/api/products" - Create new product (multipart form with media)
- GET "/api/products/{id}" - Get product by ID
- PUT "/api/products/{id}" - Update product
- DELETE "/api/products/{id}" - Delete product and its media
- GET "/api/products/files/{fileId}" - Download a product media file

CATEGORY
- GET "/api/categories" - Get all categories
- POST "/api/categories" - Create new category
- GET "/api/categories/{id}" - Get category by ID
- PUT "/api/categories/{id}" - Update category
- DELETE "/api/categories/{id}" - Delete category

SEARCH
- GET "/api/product-search" - Search products with filters and pagination
- GET "/api/product-search/brands" - List available brands
- GET "/api/product-search/price-range" - Get min and max prices
- GET "/api/product-search/filter-options" - Get all filter options

ORDER
- POST "/api/orders" - Create a new order (COD only)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
