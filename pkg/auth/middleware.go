package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
)

// JWTAuthMiddleware crea el middleware de autenticación JWT
func JWTAuthMiddleware() gin.HandlerFunc {
	jwtService, err := NewJWTService()
	if err != nil {
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Error al configurar la autenticación",
				"el servicio JWT no fue inicializado correctamente",
			))
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticación requerida",
				"no se entregó el encabezado Authorization",
			))
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"use el formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if err == ErrExpiredToken {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("business_id", claims.BusinessID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// CurrentUserID devuelve el ID del usuario autenticado
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get("user_id")
	s, _ := id.(string)
	return s
}

// CurrentBusinessID devuelve el ID de la empresa del usuario autenticado.
// Queda vacío hasta que el usuario registra su empresa.
func CurrentBusinessID(c *gin.Context) string {
	id, _ := c.Get("business_id")
	s, _ := id.(string)
	return s
}

// RequireBusiness aborta con 403 si el token aún no tiene empresa asociada.
// Todas las rutas contables y de remuneraciones lo exigen.
func RequireBusiness() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentBusinessID(c) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Empresa no registrada",
				"registre su empresa antes de usar este recurso",
			))
			return
		}
		c.Next()
	}
}
