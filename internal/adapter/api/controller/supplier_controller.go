package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/supplier"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// SupplierController gestiona los proveedores de la empresa
type SupplierController struct {
	suppliers supplier.Repository
	logger    logger.Logger
}

// NewSupplierController crea una nueva instancia de SupplierController
func NewSupplierController(suppliers supplier.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{suppliers: suppliers, logger: logger}
}

// Create registra un proveedor
// @Summary Crear proveedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Datos del proveedor"
// @Success 201 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	s, err := supplier.New(auth.CurrentBusinessID(ctx), req.RUT, req.Name)
	if err != nil {
		respondError(ctx, c.logger, "supplier.create", err)
		return
	}
	if err := s.Update(req.Name, req.Contact, req.Phone, req.Email, req.Address); err != nil {
		respondError(ctx, c.logger, "supplier.create", err)
		return
	}
	if err := c.suppliers.Create(ctx, s); err != nil {
		respondError(ctx, c.logger, "supplier.create", err)
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// Get devuelve un proveedor
// @Summary Obtener proveedor
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del proveedor"
// @Success 200 {object} supplier.Supplier
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.suppliers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "supplier.get", err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

// List lista los proveedores activos
// @Summary Listar proveedores
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	suppliers, err := c.suppliers.List(ctx, auth.CurrentBusinessID(ctx), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "supplier.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(suppliers, pagination))
}

// Update actualiza un proveedor
// @Summary Actualizar proveedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del proveedor"
// @Param supplier body dto.SupplierUpdateRequest true "Datos del proveedor"
// @Success 200 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	var req dto.SupplierUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	s, err := c.suppliers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "supplier.update", err)
		return
	}
	if err := s.Update(req.Name, req.Contact, req.Phone, req.Email, req.Address); err != nil {
		respondError(ctx, c.logger, "supplier.update", err)
		return
	}
	if err := c.suppliers.Update(ctx, s); err != nil {
		respondError(ctx, c.logger, "supplier.update", err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

// Deactivate desactiva un proveedor
// @Summary Desactivar proveedor
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del proveedor"
// @Success 200 {object} supplier.Supplier
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Deactivate(ctx *gin.Context) {
	s, err := c.suppliers.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "supplier.deactivate", err)
		return
	}
	if err := s.Deactivate(); err != nil {
		respondError(ctx, c.logger, "supplier.deactivate", err)
		return
	}
	if err := c.suppliers.Update(ctx, s); err != nil {
		respondError(ctx, c.logger, "supplier.deactivate", err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}
