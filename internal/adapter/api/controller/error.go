package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/logger"
)

// respondError traduce un error del dominio a la respuesta HTTP y lo
// registra. Los errores de validación y de negocio se responden con su
// mensaje; los internos se registran completos y se responden genéricos.
func respondError(ctx *gin.Context, log logger.Logger, operation string, err error) {
	status := apperr.HTTPStatus(err)

	if apperr.IsKind(err, apperr.KindInternal) {
		log.Error("error interno", "operation", operation, "error", err.Error())
		ctx.JSON(status, dto.NewErrorResponse(status, "error interno del servidor", ""))
		return
	}

	log.Info("operación rechazada", "operation", operation, "status", status, "reason", err.Error())
	ctx.JSON(status, dto.NewErrorResponse(status, err.Error(), ""))
}
