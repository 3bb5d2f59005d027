package filing

import "context"

// F29Repository define las operaciones de persistencia del formulario 29
type F29Repository interface {
	// Create registra la declaración; si otra solicitud concurrente ganó la
	// carrera por el período, la implementación devuelve la fila ganadora
	Create(ctx context.Context, f *F29) (*F29, error)

	// FindByID busca una declaración de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*F29, error)

	// FindByPeriod busca la declaración de la empresa para un período
	FindByPeriod(ctx context.Context, businessID string, month, year int) (*F29, error)

	// ListByYear lista las declaraciones de la empresa de un año, ordenadas por mes
	ListByYear(ctx context.Context, businessID string, year int) ([]*F29, error)

	// Update persiste un recálculo de borrador o la transición a declarado
	Update(ctx context.Context, f *F29) error
}

// F22Repository define las operaciones de persistencia del formulario 22
type F22Repository interface {
	// Create registra la declaración anual; ante una carrera por el año la
	// implementación devuelve la fila ganadora
	Create(ctx context.Context, f *F22) (*F22, error)

	// FindByYear busca la declaración anual de la empresa
	FindByYear(ctx context.Context, businessID string, year int) (*F22, error)

	// Update persiste la transición a declarado
	Update(ctx context.Context, f *F22) error
}
