package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterSupplierRoutes registra las rutas del módulo de proveedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		suppliers.POST("", supplierController.Create)
		suppliers.GET("", supplierController.List)
		suppliers.GET("/:id", supplierController.Get)
		suppliers.PUT("/:id", supplierController.Update)
		suppliers.DELETE("/:id", supplierController.Deactivate)
	}
}

// RegisterClientRoutes registra las rutas del módulo de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.Get)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Deactivate)
	}
}
