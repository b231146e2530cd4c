package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
