package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/product"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// ProductController gestiona el catálogo de productos y su inventario
type ProductController struct {
	products product.Repository
	logger   logger.Logger
}

// NewProductController crea una nueva instancia de ProductController
func NewProductController(products product.Repository, logger logger.Logger) *ProductController {
	return &ProductController{products: products, logger: logger}
}

// Create registra un producto
// @Summary Crear producto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Datos del producto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	p, err := product.New(auth.CurrentBusinessID(ctx), req.Name, req.Code, req.Category,
		req.UnitOfMeasure, req.MinimumStock, req.PurchasePrice, req.SalePrice)
	if err != nil {
		respondError(ctx, c.logger, "product.create", err)
		return
	}
	if err := c.products.Create(ctx, p); err != nil {
		respondError(ctx, c.logger, "product.create", err)
		return
	}

	c.logger.Info("producto creado", "product_id", p.ID, "code", p.Code)
	ctx.JSON(http.StatusCreated, p)
}

// Get devuelve un producto
// @Summary Obtener producto
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.products.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.get", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// List lista los productos activos
// @Summary Listar productos
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	products, err := c.products.List(ctx, auth.CurrentBusinessID(ctx), pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "product.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(products, pagination))
}

// Update actualiza un producto
// @Summary Actualizar producto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Param product body dto.ProductUpdateRequest true "Datos del producto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	p, err := c.products.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.update", err)
		return
	}
	if err := p.Update(req.Name, req.Code, req.Category, req.UnitOfMeasure,
		req.MinimumStock, req.PurchasePrice, req.SalePrice); err != nil {
		respondError(ctx, c.logger, "product.update", err)
		return
	}
	if err := c.products.Update(ctx, p); err != nil {
		respondError(ctx, c.logger, "product.update", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Deactivate desactiva un producto
// @Summary Desactivar producto
// @Description Desactivación de una sola vía; el historial del producto se conserva
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Deactivate(ctx *gin.Context) {
	p, err := c.products.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.deactivate", err)
		return
	}
	if err := p.Deactivate(); err != nil {
		respondError(ctx, c.logger, "product.deactivate", err)
		return
	}
	if err := c.products.Update(ctx, p); err != nil {
		respondError(ctx, c.logger, "product.deactivate", err)
		return
	}

	c.logger.Info("producto desactivado", "product_id", p.ID)
	ctx.JSON(http.StatusOK, p)
}

// AdjustStock aplica un ajuste manual de stock
// @Summary Ajustar stock
// @Description Registra un movimiento de ajuste; el stock resultante no puede quedar negativo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Param adjustment body dto.StockAdjustmentRequest true "Ajuste"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products/{id}/stock [post]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	p, err := c.products.AdjustStock(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"), req.Delta, req.Reason)
	if err != nil {
		respondError(ctx, c.logger, "product.adjust_stock", err)
		return
	}

	c.logger.Info("stock ajustado", "product_id", p.ID, "delta", req.Delta, "stock", p.CurrentStock)
	ctx.JSON(http.StatusOK, p)
}

// ListMovements lista los movimientos de stock de un producto
// @Summary Movimientos de stock
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Success 200 {object} dto.ListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/movements [get]
func (c *ProductController) ListMovements(ctx *gin.Context) {
	// verificar pertenencia del producto a la empresa antes de listar
	p, err := c.products.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "product.movements", err)
		return
	}

	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	movements, err := c.products.ListMovements(ctx, p.ID, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "product.movements", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(movements, pagination))
}
