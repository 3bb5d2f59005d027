package worker

import "context"

// Repository define las operaciones de persistencia de trabajadores
type Repository interface {
	// Create registra un nuevo trabajador
	Create(ctx context.Context, w *Worker) error

	// FindByID busca un trabajador de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Worker, error)

	// FindByRUT busca un trabajador de la empresa por su RUT
	FindByRUT(ctx context.Context, businessID, rut string) (*Worker, error)

	// List lista los trabajadores activos de la empresa con paginación
	List(ctx context.Context, businessID string, limit, offset int) ([]*Worker, error)

	// Update actualiza los datos de un trabajador existente
	Update(ctx context.Context, w *Worker) error
}
