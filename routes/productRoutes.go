package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
)

func ProductRoutes(server *gin.Engine, pc *controllers.ProductController) {
	products := server.Group("/api/products")
	{
		products.GET("", pc.ListProducts)
		products.POST("", pc.CreateProduct)
		products.GET("/files/:fileId", pc.GetProductFile)
		products.GET("/:id", pc.GetProduct)
		products.PUT("/:id", pc.UpdateProduct)
		products.DELETE("/:id", pc.DeleteProduct)
	}
}
