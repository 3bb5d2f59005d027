package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// TransactionController gestiona las ventas y compras de la empresa
type TransactionController struct {
	transactions transaction.Repository
	logger       logger.Logger
}

// NewTransactionController crea una nueva instancia de TransactionController
func NewTransactionController(transactions transaction.Repository, logger logger.Logger) *TransactionController {
	return &TransactionController{transactions: transactions, logger: logger}
}

// Create registra una transacción con sus efectos de inventario
// @Summary Registrar transacción
// @Description Registra una venta o compra; las líneas ajustan el stock de los productos en la misma operación
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param transaction body dto.TransactionRequest true "Datos de la transacción"
// @Success 201 {object} transaction.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	t, err := c.transactions.CreateWithInventory(ctx, req.ToCreateInput(auth.CurrentBusinessID(ctx)))
	if err != nil {
		respondError(ctx, c.logger, "transaction.create", err)
		return
	}

	c.logger.Info("transacción registrada", "transaction_id", t.ID, "kind", t.Kind, "gross", t.GrossAmount)
	ctx.JSON(http.StatusCreated, t)
}

// Get devuelve una transacción con sus líneas
// @Summary Obtener transacción
// @Tags transactions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la transacción"
// @Success 200 {object} transaction.Transaction
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (c *TransactionController) Get(ctx *gin.Context) {
	t, err := c.transactions.FindByID(ctx, auth.CurrentBusinessID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "transaction.get", err)
		return
	}
	ctx.JSON(http.StatusOK, t)
}

// List lista las transacciones de la empresa
// @Summary Listar transacciones
// @Description Lista paginada; con month y year filtra por período tributario
// @Tags transactions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamaño de página"
// @Param month query int false "Mes del período"
// @Param year query int false "Año del período"
// @Success 200 {object} dto.ListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	businessID := auth.CurrentBusinessID(ctx)

	month, _ := strconv.Atoi(ctx.Query("month"))
	year, _ := strconv.Atoi(ctx.Query("year"))
	if month != 0 || year != 0 {
		if month < 1 || month > 12 || year == 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", "indique month y year"))
			return
		}
		from, to := tax.PeriodRange(tax.Period{Month: month, Year: year})
		txs, err := c.transactions.ListByPeriod(ctx, businessID, from, to)
		if err != nil {
			respondError(ctx, c.logger, "transaction.list", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"items": txs})
		return
	}

	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	txs, err := c.transactions.List(ctx, businessID, pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "transaction.list", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewListResponse(txs, pagination))
}

// Delete revierte una transacción
// @Summary Revertir transacción
// @Description Deshace los efectos de inventario y elimina la transacción con sus líneas
// @Tags transactions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la transacción"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (c *TransactionController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.transactions.Reverse(ctx, auth.CurrentBusinessID(ctx), id); err != nil {
		respondError(ctx, c.logger, "transaction.reverse", err)
		return
	}

	c.logger.Info("transacción revertida", "transaction_id", id)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("transacción revertida", nil))
}
