package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/service"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// F22Controller gestiona la declaración anual de renta
type F22Controller struct {
	f22s   *service.F22Service
	logger logger.Logger
}

// NewF22Controller crea una nueva instancia de F22Controller
func NewF22Controller(f22s *service.F22Service, logger logger.Logger) *F22Controller {
	return &F22Controller{f22s: f22s, logger: logger}
}

// GetOrCreate devuelve la declaración del año, creándola en borrador si no
// existe
// @Summary Obtener F22 del año
// @Description Agrega los F29 del año tributario la primera vez; requiere al menos un F29 en el año
// @Tags f22
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año tributario"
// @Success 200 {object} filing.F22
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /f22/{year} [get]
func (c *F22Controller) GetOrCreate(ctx *gin.Context) {
	year, ok := c.yearParam(ctx)
	if !ok {
		return
	}

	f, err := c.f22s.GetOrCreate(ctx, auth.CurrentBusinessID(ctx), year)
	if err != nil {
		respondError(ctx, c.logger, "f22.get_or_create", err)
		return
	}
	ctx.JSON(http.StatusOK, f)
}

// MarkFiled presenta la declaración anual ante el SII
// @Summary Declarar F22
// @Description Transición borrador → declarado, de una sola vía
// @Tags f22
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año tributario"
// @Param filing body dto.MarkFiledRequest true "Folio de la presentación"
// @Success 200 {object} filing.F22
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /f22/{year}/file [post]
func (c *F22Controller) MarkFiled(ctx *gin.Context) {
	year, ok := c.yearParam(ctx)
	if !ok {
		return
	}

	var req dto.MarkFiledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	var at time.Time
	if req.FiledAt != nil {
		at = *req.FiledAt
	}

	f, err := c.f22s.MarkFiled(ctx, auth.CurrentBusinessID(ctx), year, req.Folio, at)
	if err != nil {
		respondError(ctx, c.logger, "f22.file", err)
		return
	}

	c.logger.Info("F22 declarado", "f22_id", f.ID, "folio", f.Folio)
	ctx.JSON(http.StatusOK, f)
}

func (c *F22Controller) yearParam(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "año inválido", ""))
		return 0, false
	}
	return year, true
}
