package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterWorkerRoutes registra las rutas del módulo de trabajadores
func RegisterWorkerRoutes(r *gin.RouterGroup, workerController *controller.WorkerController) {
	workers := r.Group("/workers")
	workers.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		workers.POST("", workerController.Create)
		workers.GET("", workerController.List)
		workers.GET("/:id", workerController.Get)
		workers.PUT("/:id", workerController.Update)
		workers.DELETE("/:id", workerController.Deactivate)
	}
}

// RegisterSettlementRoutes registra las rutas de liquidaciones de sueldo y
// del archivo Previred
func RegisterSettlementRoutes(r *gin.RouterGroup, settlementController *controller.SettlementController) {
	settlements := r.Group("/settlements")
	settlements.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		settlements.POST("", settlementController.Create)
		settlements.GET("", settlementController.List)
		settlements.GET("/:id", settlementController.Get)
		settlements.POST("/:id/pay", settlementController.MarkPaid)
		settlements.GET("/previred/:year/:month", settlementController.PreviredFile)
	}
}
