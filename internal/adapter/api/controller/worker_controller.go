package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// WorkerController gestiona las fichas laborales de los trabajadores
type WorkerController struct {
	workers worker.Repository
	logger  logger.Logger
}

// NewWorkerController crea una nueva instancia de WorkerController
func NewWorkerController(workers worker.Repository, logger logger.Logger) *WorkerController {
	return &WorkerController{workers: workers, logger: logger}
}

// Create registra un trabajador
// @Summary Crear trabajador
// @Tags workers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param worker body dto.WorkerRequest true "Datos del trabajador"
// @Success 201 {object} worker.Worker
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /workers [post]
func (c *WorkerController) Create(ctx *gin.Context) {
	var req dto.WorkerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	w, err := worker.New(auth.CurrentBusinessID(ctx), req.RUT, req.FirstName,
		req.PaternalSurname, req.MaternalSurname, req.BaseSalary, req.AFPName,
		worker.HealthSystem(req.HealthSystem), req.StartDate)
	if err != nil {
		respondError(ctx, c.logger, "worker.create", err)
		return
	}
	w.HealthInstitution = req.HealthInstitution

	if err := c.workers.Create(ctx, w); err != nil {
		respondError(ctx, c.logger, "worker.create", err)
		return
	}

	c.logger.Info("trabajador registrado", "worker_id", w.ID, "rut", w.RUT)
	ctx.JSON(http.StatusCreated, w)
}

// Get devuelve un trabajador
// @Summary Obtener trabajador
// @Tags workers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del trabajador"
// @Success 200 {object} worker.Worker
// @Failure 404 {object} dto.ErrorResponse
// @Router /workers/{id} [get]
func (c *WorkerController) Get(ctx *gin.Context) {
	w, err := c.workers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "worker.get", err)
		return
	}
	ctx.JSON(http.StatusOK, w)
}

// List lista los trabajadores activos
// @Summary Listar trabajadores
// @Tags workers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Router /workers [get]
func (c *WorkerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	workers, err := c.workers.List(ctx, auth.CurrentBusinessID(ctx), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "worker.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(workers, pagination))
}

// Update actualiza la ficha de un trabajador
// @Summary Actualizar trabajador
// @Tags workers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del trabajador"
// @Param worker body dto.WorkerUpdateRequest true "Datos del trabajador"
// @Success 200 {object} worker.Worker
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /workers/{id} [put]
func (c *WorkerController) Update(ctx *gin.Context) {
	var req dto.WorkerUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	w, err := c.workers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "worker.update", err)
		return
	}
	if err := w.Update(req.FirstName, req.PaternalSurname, req.MaternalSurname,
		req.BaseSalary, req.AFPName, worker.HealthSystem(req.HealthSystem), req.HealthInstitution); err != nil {
		respondError(ctx, c.logger, "worker.update", err)
		return
	}
	if err := c.workers.Update(ctx, w); err != nil {
		respondError(ctx, c.logger, "worker.update", err)
		return
	}
	ctx.JSON(http.StatusOK, w)
}

// Deactivate registra el término de la relación laboral
// @Summary Desactivar trabajador
// @Description Desactivación de una sola vía; las liquidaciones históricas se conservan
// @Tags workers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del trabajador"
// @Param termination body dto.WorkerDeactivateRequest true "Fecha de término"
// @Success 200 {object} worker.Worker
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /workers/{id} [delete]
func (c *WorkerController) Deactivate(ctx *gin.Context) {
	var req dto.WorkerDeactivateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	w, err := c.workers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "worker.deactivate", err)
		return
	}
	if err := w.Deactivate(req.EndDate); err != nil {
		respondError(ctx, c.logger, "worker.deactivate", err)
		return
	}
	if err := c.workers.Update(ctx, w); err != nil {
		respondError(ctx, c.logger, "worker.deactivate", err)
		return
	}

	c.logger.Info("trabajador desactivado", "worker_id", w.ID)
	ctx.JSON(http.StatusOK, w)
}
