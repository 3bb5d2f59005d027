package settlement

import "context"

// Repository define las operaciones de persistencia de liquidaciones
type Repository interface {
	// Create registra una nueva liquidación; falla con conflicto si ya
	// existe una para el mismo trabajador, mes y año
	Create(ctx context.Context, s *Settlement) error

	// FindByID busca una liquidación de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Settlement, error)

	// FindByWorkerPeriod busca la liquidación de un trabajador en un período
	FindByWorkerPeriod(ctx context.Context, workerID string, month, year int) (*Settlement, error)

	// ListByPeriod lista las liquidaciones de la empresa en un período
	ListByPeriod(ctx context.Context, businessID string, month, year int) ([]*Settlement, error)

	// ListByWorker lista las liquidaciones históricas de un trabajador
	ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*Settlement, error)

	// MarkPaid persiste la transición a pagada
	MarkPaid(ctx context.Context, s *Settlement) error
}
