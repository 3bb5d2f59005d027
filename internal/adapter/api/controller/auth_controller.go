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

// AuthController gestiona el registro y el inicio de sesión
type AuthController struct {
	users      user.Repository
	businesses business.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(users user.Repository, businesses business.Repository,
	jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		users:      users,
		businesses: businesses,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register registra un nuevo usuario
// @Summary Registrar usuario
// @Description Crea una cuenta de usuario y devuelve un token de acceso
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Datos del usuario"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	u, err := user.New(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(ctx, c.logger, "auth.register", err)
		return
	}

	if err := c.users.Create(ctx, u); err != nil {
		respondError(ctx, c.logger, "auth.register", err)
		return
	}

	token, err := c.jwtService.GenerateToken(u, "")
	if err != nil {
		respondError(ctx, c.logger, "auth.register", apperr.Internal("error al emitir el token", err))
		return
	}

	c.logger.Info("usuario registrado", "user_id", u.ID, "email", u.Email)
	ctx.JSON(http.StatusCreated, dto.TokenResponse{Token: token, User: dto.ToUserResponse(u)})
}

// Login inicia sesión con email y contraseña
// @Summary Iniciar sesión
// @Description Valida las credenciales y devuelve un token con la empresa asociada
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	u, err := c.users.FindByEmail(ctx, req.Email)
	if err != nil || !u.CheckPassword(req.Password) {
		c.logger.Info("inicio de sesión rechazado", "email", req.Email)
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
		return
	}
	if !u.Active {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuario inactivo", ""))
		return
	}

	// la empresa del usuario viaja en el token; vacía si aún no la registra
	businessID := ""
	if biz, err := c.businesses.FindByOwner(ctx, u.ID); err == nil {
		businessID = biz.ID
	}

	token, err := c.jwtService.GenerateToken(u, businessID)
	if err != nil {
		respondError(ctx, c.logger, "auth.login", apperr.Internal("error al emitir el token", err))
		return
	}

	if err := c.users.UpdateLastLogin(ctx, u.ID); err != nil {
		c.logger.Warn("no se pudo registrar el último inicio de sesión", "user_id", u.ID, "error", err.Error())
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.ToUserResponse(u)})
}

// Me devuelve el usuario autenticado
// @Summary Usuario actual
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	u, err := c.users.FindByID(ctx, auth.CurrentUserID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "auth.me", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
