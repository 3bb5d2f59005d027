package product

import "context"

// Repository define las operaciones de persistencia de productos.
// Los ajustes de stock ligados a transacciones no viven aquí: los ejecuta
// el procesador de transacciones dentro de su unidad atómica.
type Repository interface {
	// Create registra un nuevo producto
	Create(ctx context.Context, p *Product) error

	// FindByID busca un producto de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Product, error)

	// FindByCode busca un producto de la empresa por su código
	FindByCode(ctx context.Context, businessID, code string) (*Product, error)

	// List lista los productos activos de la empresa con paginación
	List(ctx context.Context, businessID string, limit, offset int) ([]*Product, error)

	// Update actualiza los datos de un producto existente
	Update(ctx context.Context, p *Product) error

	// AdjustStock aplica un ajuste manual de stock y registra el movimiento.
	// El stock resultante no puede quedar negativo.
	AdjustStock(ctx context.Context, businessID, id string, delta int64, reason string) (*Product, error)

	// ListMovements lista los movimientos de stock de un producto
	ListMovements(ctx context.Context, productID string, limit, offset int) ([]*StockMovement, error)
}
