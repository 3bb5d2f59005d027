package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterAlertRoutes registra las rutas del módulo de alertas
func RegisterAlertRoutes(r *gin.RouterGroup, alertController *controller.AlertController) {
	alerts := r.Group("/alerts")
	alerts.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		alerts.POST("", alertController.Create)
		alerts.GET("", alertController.List)
		alerts.GET("/:id", alertController.Get)
		alerts.POST("/:id/read", alertController.MarkRead)
		alerts.POST("/:id/resolve", alertController.Resolve)
	}
}
