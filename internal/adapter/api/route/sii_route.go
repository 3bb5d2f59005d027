package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterSIIRoutes registra las rutas de integración con el SII
func RegisterSIIRoutes(r *gin.RouterGroup, certificateController *controller.CertificateController) {
	sii := r.Group("/sii")
	sii.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		sii.POST("/certificate", certificateController.Upload)
		sii.GET("/certificate", certificateController.Get)
	}
}
