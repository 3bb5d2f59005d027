package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/alert"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// AlertController gestiona las alertas de la empresa
type AlertController struct {
	alerts alert.Repository
	logger logger.Logger
}

// NewAlertController crea una nueva instancia de AlertController
func NewAlertController(alerts alert.Repository, logger logger.Logger) *AlertController {
	return &AlertController{alerts: alerts, logger: logger}
}

// Create registra una alerta manual
// @Summary Crear alerta
// @Tags alerts
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param alert body dto.AlertRequest true "Datos de la alerta"
// @Success 201 {object} alert.Alert
// @Failure 400 {object} dto.ErrorResponse
// @Router /alerts [post]
func (c *AlertController) Create(ctx *gin.Context) {
	var req dto.AlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	a, err := alert.New(auth.CurrentBusinessID(ctx), alert.KindManual, req.Title, req.Message,
		alert.Priority(req.Priority), req.Metadata)
	if err != nil {
		respondError(ctx, c.logger, "alert.create", err)
		return
	}

	if err := c.alerts.Create(ctx, a); err != nil {
		respondError(ctx, c.logger, "alert.create", err)
		return
	}
	ctx.JSON(http.StatusCreated, a)
}

// List lista las alertas de la empresa
// @Summary Listar alertas
// @Description Las alertas no resueltas aparecen primero; only_unread=true filtra las ya leídas
// @Tags alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param only_unread query bool false "Solo no leídas"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Router /alerts [get]
func (c *AlertController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)
	onlyUnread, _ := strconv.ParseBool(ctx.Query("only_unread"))

	alerts, err := c.alerts.List(ctx, auth.CurrentBusinessID(ctx), onlyUnread, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "alert.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(alerts, pagination))
}

// Get devuelve una alerta por su ID
// @Summary Obtener alerta
// @Tags alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la alerta"
// @Success 200 {object} alert.Alert
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id} [get]
func (c *AlertController) Get(ctx *gin.Context) {
	a, err := c.alerts.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "alert.get", err)
		return
	}
	ctx.JSON(http.StatusOK, a)
}

// MarkRead marca una alerta como leída
// @Summary Marcar alerta leída
// @Tags alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la alerta"
// @Success 200 {object} alert.Alert
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id}/read [post]
func (c *AlertController) MarkRead(ctx *gin.Context) {
	c.transition(ctx, "alert.mark_read", (*alert.Alert).MarkRead)
}

// Resolve marca una alerta como resuelta
// @Summary Resolver alerta
// @Tags alerts
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la alerta"
// @Success 200 {object} alert.Alert
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id}/resolve [post]
func (c *AlertController) Resolve(ctx *gin.Context) {
	c.transition(ctx, "alert.resolve", (*alert.Alert).Resolve)
}

func (c *AlertController) transition(ctx *gin.Context, operation string, apply func(*alert.Alert)) {
	a, err := c.alerts.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, operation, err)
		return
	}

	apply(a)
	if err := c.alerts.Update(ctx, a); err != nil {
		respondError(ctx, c.logger, operation, err)
		return
	}
	ctx.JSON(http.StatusOK, a)
}
