package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterAuthRoutes registra las rutas de autenticación
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		// Registro y login no requieren autenticación
		authRouter.POST("/register", authController.Register)
		authRouter.POST("/login", authController.Login)

		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
