package route

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/pkg/auth"
)

// RegisterF29Routes registra las rutas de la declaración mensual F29
func RegisterF29Routes(r *gin.RouterGroup, f29Controller *controller.F29Controller) {
	f29 := r.Group("/f29")
	f29.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		f29.GET("/:year", f29Controller.ListYear)
		f29.GET("/:year/completeness", f29Controller.Completeness)
		f29.GET("/:year/:month", f29Controller.GetOrCreate)
		f29.POST("/:id/recompute", f29Controller.Recompute)
		f29.POST("/:id/file", f29Controller.MarkFiled)
	}
}

// RegisterF22Routes registra las rutas de la declaración anual F22
func RegisterF22Routes(r *gin.RouterGroup, f22Controller *controller.F22Controller) {
	f22 := r.Group("/f22")
	f22.Use(auth.JWTAuthMiddleware(), auth.RequireBusiness())
	{
		f22.GET("/:year", f22Controller.GetOrCreate)
		f22.POST("/:year/file", f22Controller.MarkFiled)
	}
}
