package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/contapyme/contapyme/pkg/apperr"
)

// User es un usuario autenticado del sistema. Cada usuario es dueño de a lo
// más una empresa; la pertenencia se resuelve por el middleware de
// autenticación en cada solicitud.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Active      bool      `json:"active"`
	LastLoginAt time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New crea un usuario con su contraseña ya hasheada
func New(name, email, password string) (*User, error) {
	if name == "" {
		return nil, apperr.Validation("el nombre es obligatorio")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validation("email inválido")
	}
	if len(password) < 8 {
		return nil, apperr.Validation("la contraseña debe tener al menos 8 caracteres")
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, apperr.Internal("error al generar el hash de la contraseña", err)
	}
	return u, nil
}

// SetPassword guarda la contraseña con hash bcrypt
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifica la contraseña contra el hash almacenado
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
