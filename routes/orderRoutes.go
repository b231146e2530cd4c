package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
)

func OrderRoutes(server *gin.Engine, oc *controllers.OrderController) {
	server.POST("/api/orders", oc.CreateOrder)
}
