package transaction

import (
	"context"
	"time"
)

// CreateLineInput es una línea solicitada al procesador de transacciones.
// UnitPrice es obligatorio para compras; en ventas se ignora y se usa el
// precio de venta configurado en el producto.
type CreateLineInput struct {
	ProductID string
	Quantity  int64
	UnitPrice *int64
}

// CreateInput es la solicitud de registro de una transacción con inventario
type CreateInput struct {
	BusinessID     string
	Kind           Kind
	Date           time.Time
	Exempt         bool
	Description    string
	SupplierName   string
	ClientName     string
	DocumentNumber string
	Lines          []CreateLineInput
}

// Repository define las operaciones de persistencia de transacciones
type Repository interface {
	// CreateWithInventory registra la transacción, sus líneas, los ajustes de
	// stock, los movimientos de inventario y las alertas de stock bajo como
	// una sola unidad atómica
	CreateWithInventory(ctx context.Context, input CreateInput) (*Transaction, error)

	// FindByID busca una transacción de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Transaction, error)

	// List lista las transacciones de la empresa con paginación
	List(ctx context.Context, businessID string, limit, offset int) ([]*Transaction, error)

	// ListByPeriod lista las transacciones de la empresa fechadas dentro del
	// rango [from, to] inclusive
	ListByPeriod(ctx context.Context, businessID string, from, to time.Time) ([]*Transaction, error)

	// Reverse deshace los efectos de inventario de la transacción y la
	// elimina junto a sus líneas, como una sola unidad atómica
	Reverse(ctx context.Context, businessID, id string) error
}
