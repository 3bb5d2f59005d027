package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
)

// Product es un ítem de inventario de la empresa. El stock nunca es
// negativo y solo se modifica a través de movimientos registrados; un
// producto referenciado por transacciones se desactiva, no se elimina.
type Product struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Category      string    `json:"category,omitempty"`
	CurrentStock  int64     `json:"current_stock"`
	MinimumStock  int64     `json:"minimum_stock"`
	UnitOfMeasure string    `json:"unit_of_measure"`
	PurchasePrice int64     `json:"purchase_price"`
	SalePrice     int64     `json:"sale_price"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MovementKind clasifica un movimiento de stock
type MovementKind string

const (
	// MovementEntry es un ingreso de stock (compra o reversa de venta)
	MovementEntry MovementKind = "entry"
	// MovementExit es una salida de stock (venta o reversa de compra)
	MovementExit MovementKind = "exit"
	// MovementAdjustment es un ajuste manual
	MovementAdjustment MovementKind = "adjustment"
)

// StockMovement es el registro auditable de cada variación de stock, con el
// stock antes y después del movimiento
type StockMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Kind          MovementKind `json:"kind"`
	Quantity      int64        `json:"quantity"`
	StockBefore   int64        `json:"stock_before"`
	StockAfter    int64        `json:"stock_after"`
	Reason        string       `json:"reason,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// New crea un producto activo con stock inicial cero
func New(businessID, name, code, category, unitOfMeasure string,
	minimumStock, purchasePrice, salePrice int64) (*Product, error) {

	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if name == "" {
		return nil, apperr.Validation("el nombre del producto es obligatorio")
	}
	if minimumStock < 0 {
		return nil, apperr.Validation("el stock mínimo no puede ser negativo")
	}
	if purchasePrice < 0 || salePrice < 0 {
		return nil, apperr.Validation("los precios no pueden ser negativos")
	}

	if unitOfMeasure == "" {
		unitOfMeasure = "unidad"
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		Name:          name,
		Code:          code,
		Category:      category,
		UnitOfMeasure: unitOfMeasure,
		MinimumStock:  minimumStock,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// BelowMinimum informa si el stock actual está en o bajo el umbral mínimo
func (p *Product) BelowMinimum() bool {
	return p.CurrentStock <= p.MinimumStock
}

// Update modifica los datos editables del producto. El stock no se toca
// aquí: solo cambia vía movimientos.
func (p *Product) Update(name, code, category, unitOfMeasure string,
	minimumStock, purchasePrice, salePrice int64) error {

	if name == "" {
		return apperr.Validation("el nombre del producto es obligatorio")
	}
	if minimumStock < 0 {
		return apperr.Validation("el stock mínimo no puede ser negativo")
	}
	if purchasePrice < 0 || salePrice < 0 {
		return apperr.Validation("los precios no pueden ser negativos")
	}

	p.Name = name
	p.Code = code
	p.Category = category
	if unitOfMeasure != "" {
		p.UnitOfMeasure = unitOfMeasure
	}
	p.MinimumStock = minimumStock
	p.PurchasePrice = purchasePrice
	p.SalePrice = salePrice
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate retira el producto del catálogo activo, de una sola vía
func (p *Product) Deactivate() error {
	if !p.Active {
		return apperr.Conflict("el producto ya está inactivo")
	}
	p.Active = false
	p.UpdatedAt = time.Now()
	return nil
}
