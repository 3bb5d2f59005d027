package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterTransactionRoutes registra las rutas del módulo de transacciones
func RegisterTransactionRoutes(r *gin.RouterGroup, transactionController *controller.TransactionController) {
	transactions := r.Group("/transactions")
	transactions.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		transactions.POST("", transactionController.Create)
		transactions.GET("", transactionController.List)
		transactions.GET("/:id", transactionController.Get)
		transactions.DELETE("/:id", transactionController.Delete)
	}
}
