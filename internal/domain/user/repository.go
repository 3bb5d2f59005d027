package user

import "context"

// Repository define las operaciones de persistencia de usuarios
type Repository interface {
	// Create registra un nuevo usuario; falla con conflicto si el email ya existe
	Create(ctx context.Context, u *User) error

	// FindByID busca un usuario por su ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca un usuario por su email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin registra el momento del último inicio de sesión
	UpdateLastLogin(ctx context.Context, id string) error
}
