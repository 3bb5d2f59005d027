package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/client"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// ClientController gestiona los clientes de la empresa
type ClientController struct {
	clients client.Repository
	logger  logger.Logger
}

// NewClientController crea una nueva instancia de ClientController
func NewClientController(clients client.Repository, logger logger.Logger) *ClientController {
	return &ClientController{clients: clients, logger: logger}
}

// Create registra un cliente
// @Summary Crear cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param client body dto.ClientRequest true "Datos del cliente"
// @Success 201 {object} client.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cl, err := client.New(auth.CurrentBusinessID(ctx), req.RUT, req.Name)
	if err != nil {
		respondError(ctx, c.logger, "client.create", err)
		return
	}
	if err := cl.Update(req.Name, req.Phone, req.Email, req.Address); err != nil {
		respondError(ctx, c.logger, "client.create", err)
		return
	}
	if err := c.clients.Create(ctx, cl); err != nil {
		respondError(ctx, c.logger, "client.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, cl)
}

// Get devuelve un cliente
// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} client.Client
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) Get(ctx *gin.Context) {
	cl, err := c.clients.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "client.get", err)
		return
	}
	ctx.JSON(http.StatusOK, cl)
}

// List lista los clientes activos
// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	clients, err := c.clients.List(ctx, auth.CurrentBusinessID(ctx), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "client.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(clients, pagination))
}

// Update actualiza un cliente
// @Summary Actualizar cliente
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Param client body dto.ClientUpdateRequest true "Datos del cliente"
// @Success 200 {object} client.Client
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	var req dto.ClientUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cl, err := c.clients.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "client.update", err)
		return
	}
	if err := cl.Update(req.Name, req.Phone, req.Email, req.Address); err != nil {
		respondError(ctx, c.logger, "client.update", err)
		return
	}
	if err := c.clients.Update(ctx, cl); err != nil {
		respondError(ctx, c.logger, "client.update", err)
		return
	}
	ctx.JSON(http.StatusOK, cl)
}

// Deactivate desactiva un cliente
// @Summary Desactivar cliente
// @Tags clients
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} client.Client
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Deactivate(ctx *gin.Context) {
	cl, err := c.clients.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "client.deactivate", err)
		return
	}
	if err := cl.Deactivate(); err != nil {
		respondError(ctx, c.logger, "client.deactivate", err)
		return
	}
	if err := c.clients.Update(ctx, cl); err != nil {
		respondError(ctx, c.logger, "client.deactivate", err)
		return
	}
	ctx.JSON(http.StatusOK, cl)
}
