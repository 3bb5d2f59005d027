package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/contapyme/contapyme/internal/domain/user"
)

// Errores específicos del servicio de tokens
var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrInvalidClaims = errors.New("claims inválidas")
	ErrMissingJWTKey = errors.New("clave secreta JWT no configurada")
)

// JWTClaims son las claims personalizadas del token. BusinessID acota todas
// las operaciones posteriores a la empresa del usuario; queda vacío hasta
// que el usuario registra su empresa.
type JWTClaims struct {
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id,omitempty"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

// JWTService emite y valida tokens JWT firmados con HS256
type JWTService struct {
	secretKey  []byte
	expiration time.Duration
}

// NewJWTService crea el servicio leyendo la clave de JWT_SECRET_KEY
func NewJWTService() (*JWTService, error) {
	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		return nil, ErrMissingJWTKey
	}

	// 24 horas por defecto si no se configura
	expiration := 24 * time.Hour
	if hours := os.Getenv("JWT_EXPIRATION_HOURS"); hours != "" {
		if parsed, err := time.ParseDuration(hours + "h"); err == nil {
			expiration = parsed
		}
	}

	return &JWTService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
	}, nil
}

// GenerateToken emite un token para el usuario con su empresa asociada
func (s *JWTService) GenerateToken(u *user.User, businessID string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:     u.ID,
		BusinessID: businessID,
		Email:      u.Email,
		Name:       u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "contapyme-api",
			Subject:   u.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken valida un token y devuelve sus claims
func (s *JWTService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
