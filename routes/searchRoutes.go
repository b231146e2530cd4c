package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
)

func SearchRoutes(server *gin.Engine, sc *controllers.SearchController) {
	search := server.Group("/api/product-search")
	{
		search.GET("", sc.SearchProducts)
		search.GET("/brands", sc.GetBrands)
		search.GET("/price-range", sc.GetPriceRange)
		search.GET("/filter-options", sc.GetFilterOptions)
	}
}
