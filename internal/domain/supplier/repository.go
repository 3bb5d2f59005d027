package supplier

import "context"

// Repository define las operaciones de persistencia de proveedores
type Repository interface {
	// Create registra un nuevo proveedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca un proveedor de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Supplier, error)

	// List lista los proveedores activos de la empresa con paginación
	List(ctx context.Context, businessID string, limit, offset int) ([]*Supplier, error)

	// Update actualiza los datos de un proveedor existente
	Update(ctx context.Context, s *Supplier) error
}
