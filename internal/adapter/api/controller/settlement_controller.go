package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/settlement"
	"github.com/contapyme/contapyme/internal/service"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// SettlementController gestiona las liquidaciones de sueldo y el archivo
// de cotizaciones Previred
type SettlementController struct {
	payroll     *service.PayrollService
	settlements settlement.Repository
	logger      logger.Logger
}

// NewSettlementController crea una nueva instancia de SettlementController
func NewSettlementController(payroll *service.PayrollService, settlements settlement.Repository,
	logger logger.Logger) *SettlementController {
	return &SettlementController{payroll: payroll, settlements: settlements, logger: logger}
}

// Create calcula y registra una liquidación
// @Summary Crear liquidación
// @Description Calcula la liquidación del trabajador para el período; única por trabajador, mes y año
// @Tags settlements
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settlement body dto.SettlementRequest true "Datos de la liquidación"
// @Success 201 {object} settlement.Settlement
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /settlements [post]
func (c *SettlementController) Create(ctx *gin.Context) {
	var req dto.SettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	sett, err := c.payroll.CreateSettlement(ctx, auth.CurrentBusinessID(ctx), req.WorkerID,
		req.Month, req.Year, req.ToPayrollInput())
	if err != nil {
		respondError(ctx, c.logger, "settlement.create", err)
		return
	}

	c.logger.Info("liquidación creada", "settlement_id", sett.ID, "worker_id", sett.WorkerID,
		"period", fmt.Sprintf("%02d/%d", sett.Month, sett.Year), "net_pay", sett.NetPay)
	ctx.JSON(http.StatusCreated, sett)
}

// Get devuelve una liquidación
// @Summary Obtener liquidación
// @Tags settlements
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la liquidación"
// @Success 200 {object} settlement.Settlement
// @Failure 404 {object} dto.ErrorResponse
// @Router /settlements/{id} [get]
func (c *SettlementController) Get(ctx *gin.Context) {
	sett, err := c.settlements.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "settlement.get", err)
		return
	}
	ctx.JSON(http.StatusOK, sett)
}

// List lista las liquidaciones de un período o de un trabajador
// @Summary Listar liquidaciones
// @Description Con month y year lista el período; con worker_id lista el historial del trabajador
// @Tags settlements
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param month query int false "Mes"
// @Param year query int false "Año"
// @Param worker_id query string false "ID del trabajador"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /settlements [get]
func (c *SettlementController) List(ctx *gin.Context) {
	if workerID := ctx.Query("worker_id"); workerID != "" {
		page, _ := strconv.Atoi(ctx.Query("page"))
		pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
		pagination := dto.GetPagination(page, pageSize)

		setts, err := c.settlements.ListByWorker(ctx, workerID, pagination.PageSize, pagination.Offset())
		if err != nil {
			respondError(ctx, c.logger, "settlement.list", err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewListResponse(setts, pagination))
		return
	}

	month, _ := strconv.Atoi(ctx.Query("month"))
	year, _ := strconv.Atoi(ctx.Query("year"))
	if month < 1 || month > 12 || year == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", "indique month y year, o worker_id"))
		return
	}

	setts, err := c.settlements.ListByPeriod(ctx, auth.CurrentBusinessID(ctx), month, year)
	if err != nil {
		respondError(ctx, c.logger, "settlement.list", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": setts})
}

// MarkPaid registra el pago de una liquidación
// @Summary Pagar liquidación
// @Description Transición de una sola vía; sin fecha se usa el momento actual
// @Tags settlements
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la liquidación"
// @Param payment body dto.SettlementMarkPaidRequest false "Fecha de pago"
// @Success 200 {object} settlement.Settlement
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /settlements/{id}/pay [post]
func (c *SettlementController) MarkPaid(ctx *gin.Context) {
	var req dto.SettlementMarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	var at time.Time
	if req.PaidAt != nil {
		at = *req.PaidAt
	}

	sett, err := c.payroll.MarkPaid(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"), at)
	if err != nil {
		respondError(ctx, c.logger, "settlement.pay", err)
		return
	}

	c.logger.Info("liquidación pagada", "settlement_id", sett.ID)
	ctx.JSON(http.StatusOK, sett)
}

// PreviredFile genera el archivo de cotizaciones del período
// @Summary Archivo Previred
// @Description Genera el archivo de cotizaciones del período en el formato delimitado por pipes
// @Tags settlements
// @Produce plain
// @Param Authorization header string true "Bearer token"
// @Param year path int true "Año"
// @Param month path int true "Mes"
// @Success 200 {string} string "Archivo de cotizaciones"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /settlements/previred/{year}/{month} [get]
func (c *SettlementController) PreviredFile(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "año inválido", ""))
		return
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mes inválido", ""))
		return
	}

	file, err := c.payroll.PreviredFile(ctx, auth.CurrentBusinessID(ctx), month, year)
	if err != nil {
		respondError(ctx, c.logger, "settlement.previred", err)
		return
	}

	filename := fmt.Sprintf("previred_%04d_%02d.txt", year, month)
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(file))
}
