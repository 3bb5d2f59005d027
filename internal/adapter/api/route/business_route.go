package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterBusinessRoutes registra las rutas del módulo de empresa
func RegisterBusinessRoutes(r *gin.RouterGroup, businessController *controller.BusinessController) {
	business := r.Group("/business")
	business.Use(auth.JWTAuthMiddleware())
	{
		// La creación solo requiere usuario autenticado; el resto de la API
		// exige una empresa registrada
		business.POST("", businessController.Create)

		business.GET("", auth.RequireBusiness(), businessController.Get)
		business.PUT("", auth.RequireBusiness(), businessController.Update)
	}
}
