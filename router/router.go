package router

import (
	"github.com/gin-gonic/gin"

	"github.com/itish2003/giggle/controller"
)

func SetupRouter(askController *controller.AskController) *gin.Engine {
	r := gin.Default()
	r.Use(CORS(), RequestID())

	r.POST("/ask", askController.Ask)
	r.GET("/healthz", askController.Healthz)
	return r
}
