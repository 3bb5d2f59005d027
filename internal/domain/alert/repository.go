package alert

import "context"

// Repository define las operaciones de persistencia de alertas
type Repository interface {
	// Create registra una nueva alerta
	Create(ctx context.Context, a *Alert) error

	// FindByID busca una alerta de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Alert, error)

	// List lista las alertas de la empresa, las no resueltas primero
	List(ctx context.Context, businessID string, onlyUnread bool, limit, offset int) ([]*Alert, error)

	// Update persiste los cambios de estado leída/resuelta
	Update(ctx context.Context, a *Alert) error
}
