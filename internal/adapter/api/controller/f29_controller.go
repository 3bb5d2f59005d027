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

// F29Controller gestiona las declaraciones mensuales de IVA y PPM
type F29Controller struct {
	f29s   *service.F29Service
	logger logger.Logger
}

// NewF29Controller crea una nueva instancia de F29Controller
func NewF29Controller(f29s *service.F29Service, logger logger.Logger) *F29Controller {
	return &F29Controller{f29s: f29s, logger: logger}
}

// GetOrCreate devuelve la declaración del período, creándola en borrador si
// no existe
// @Summary Obtener F29 del período
// @Description Agrega las transacciones del período la primera vez; las lecturas siguientes devuelven lo persistido
// @Tags f29
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año"
// @Param month path int true "Mes"
// @Success 200 {object} filing.F29
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /f29/{year}/{month} [get]
func (c *F29Controller) GetOrCreate(ctx *gin.Context) {
	year, month, ok := c.periodParams(ctx)
	if !ok {
		return
	}

	f, err := c.f29s.GetOrCreate(ctx, auth.CurrentBusinessID(ctx), month, year)
	if err != nil {
		respondError(ctx, c.logger, "f29.get_or_create", err)
		return
	}
	ctx.JSON(http.StatusOK, f)
}

// Recompute rehace los montos de un borrador
// @Summary Recalcular F29
// @Description Rehace el borrador desde las transacciones actuales del período; una declaración presentada no se puede recalcular
// @Tags f29
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la declaración"
// @Success 200 {object} filing.F29
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /f29/{id}/recompute [post]
func (c *F29Controller) Recompute(ctx *gin.Context) {
	f, err := c.f29s.Recompute(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "f29.recompute", err)
		return
	}

	c.logger.Info("F29 recalculado", "f29_id", f.ID, "total_due", f.TotalDue)
	ctx.JSON(http.StatusOK, f)
}

// MarkFiled presenta la declaración ante el SII
// @Summary Declarar F29
// @Description Transición borrador → declarado, de una sola vía; los montos quedan inmutables
// @Tags f29
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la declaración"
// @Param filing body dto.MarkFiledRequest true "Folio de la presentación"
// @Success 200 {object} filing.F29
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /f29/{id}/file [post]
func (c *F29Controller) MarkFiled(ctx *gin.Context) {
	var req dto.MarkFiledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	var at time.Time
	if req.FiledAt != nil {
		at = *req.FiledAt
	}

	f, err := c.f29s.MarkFiled(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"), req.Folio, at)
	if err != nil {
		respondError(ctx, c.logger, "f29.file", err)
		return
	}

	c.logger.Info("F29 declarado", "f29_id", f.ID, "folio", f.Folio)
	ctx.JSON(http.StatusOK, f)
}

// ListYear lista las declaraciones de un año
// @Summary Listar F29 del año
// @Tags f29
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /f29/{year} [get]
func (c *F29Controller) ListYear(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "año inválido", ""))
		return
	}

	filings, err := c.f29s.ListYear(ctx, auth.CurrentBusinessID(ctx), year)
	if err != nil {
		respondError(ctx, c.logger, "f29.list_year", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": filings})
}

// Completeness informa los meses del año sin F29 declarado
// @Summary Completitud del año
// @Description Informa qué meses aún no tienen F29 declarado; no bloquea el F22
// @Tags f29
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año"
// @Success 200 {object} dto.YearCompletenessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /f29/{year}/completeness [get]
func (c *F29Controller) Completeness(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "año inválido", ""))
		return
	}

	missing, complete, err := c.f29s.YearCompleteness(ctx, auth.CurrentBusinessID(ctx), year)
	if err != nil {
		respondError(ctx, c.logger, "f29.completeness", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.YearCompletenessResponse{
		Year:          year,
		Complete:      complete,
		MissingMonths: missing,
	})
}

func (c *F29Controller) periodParams(ctx *gin.Context) (year, month int, ok bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "año inválido", ""))
		return 0, 0, false
	}
	month, err = strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mes inválido", ""))
		return 0, 0, false
	}
	return year, month, true
}
