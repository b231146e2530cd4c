package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
)

func CategoryRoutes(server *gin.Engine, cc *controllers.CategoryController) {
	categories := server.Group("/api/categories")
	{
		categories.GET("", cc.ListCategories)
		categories.POST("", cc.CreateCategory)
		categories.GET("/:id", cc.GetCategory)
		categories.PUT("/:id", cc.UpdateCategory)
		categories.DELETE("/:id", cc.DeleteCategory)
	}
}
