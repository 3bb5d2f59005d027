package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/business"
	"github.com/contapyme/contapyme/internal/domain/user"
	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// BusinessController gestiona la empresa del usuario autenticado
type BusinessController struct {
	businesses business.Repository
	users      user.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewBusinessController crea una nueva instancia de BusinessController
func NewBusinessController(businesses business.Repository, users user.Repository,
	jwtService *auth.JWTService, logger logger.Logger) *BusinessController {
	return &BusinessController{
		businesses: businesses,
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Create registra la empresa del usuario
// @Summary Registrar empresa
// @Description Crea la empresa del usuario autenticado y devuelve un token nuevo con ella asociada
// @Tags business
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param business body dto.BusinessRequest true "Datos de la empresa"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /business [post]
func (c *BusinessController) Create(ctx *gin.Context) {
	var req dto.BusinessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	userID := auth.CurrentUserID(ctx)
	b, err := business.New(userID, req.RUT, req.RazonSocial, req.Giro)
	if err != nil {
		respondError(ctx, c.logger, "business.create", err)
		return
	}
	if err := b.Update(req.RazonSocial, req.Giro, req.Address, req.Comuna, req.Phone, req.Email); err != nil {
		respondError(ctx, c.logger, "business.create", err)
		return
	}

	if err := c.businesses.Create(ctx, b); err != nil {
		respondError(ctx, c.logger, "business.create", err)
		return
	}

	// token nuevo con la empresa recién asociada
	u, err := c.users.FindByID(ctx, userID)
	if err != nil {
		respondError(ctx, c.logger, "business.create", err)
		return
	}
	token, err := c.jwtService.GenerateToken(u, b.ID)
	if err != nil {
		respondError(ctx, c.logger, "business.create", apperr.Internal("error al emitir el token", err))
		return
	}

	c.logger.Info("empresa registrada", "business_id", b.ID, "rut", b.RUT)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("empresa registrada", gin.H{
		"business": b,
		"token":    token,
	}))
}

// Get devuelve la empresa del usuario
// @Summary Obtener empresa
// @Tags business
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} business.Business
// @Failure 404 {object} dto.ErrorResponse
// @Router /business [get]
func (c *BusinessController) Get(ctx *gin.Context) {
	b, err := c.businesses.FindByID(ctx, auth.CurrentBusinessID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "business.get", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// Update actualiza los datos de la empresa
// @Summary Actualizar empresa
// @Tags business
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param business body dto.BusinessUpdateRequest true "Datos de la empresa"
// @Success 200 {object} business.Business
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /business [put]
func (c *BusinessController) Update(ctx *gin.Context) {
	var req dto.BusinessUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	b, err := c.businesses.FindByID(ctx, auth.CurrentBusinessID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "business.update", err)
		return
	}
	if err := b.Update(req.RazonSocial, req.Giro, req.Address, req.Comuna, req.Phone, req.Email); err != nil {
		respondError(ctx, c.logger, "business.update", err)
		return
	}
	if err := c.businesses.Update(ctx, b); err != nil {
		respondError(ctx, c.logger, "business.update", err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}
