package business

import "context"

// Repository define las operaciones de persistencia de empresas
type Repository interface {
	// Create registra la empresa; falla con conflicto si el usuario ya
	// tiene una (relación 1:1) o el RUT ya está registrado
	Create(ctx context.Context, b *Business) error

	// FindByID busca una empresa por su ID
	FindByID(ctx context.Context, id string) (*Business, error)

	// FindByOwner busca la empresa de un usuario
	FindByOwner(ctx context.Context, ownerUserID string) (*Business, error)

	// Update actualiza los datos de la empresa
	Update(ctx context.Context, b *Business) error
}
