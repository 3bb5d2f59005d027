package dto

import (
	"time"

	"github.com/contapyme/contapyme/internal/domain/transaction"
)

// TransactionLineRequest representa una línea de la transacción. El precio
// unitario solo se considera en compras; en ventas manda el precio de venta
// configurado del producto.
type TransactionLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
	UnitPrice *int64 `json:"unit_price"`
}

// TransactionRequest representa la solicitud de registro de una transacción
type TransactionRequest struct {
	Kind           string                   `json:"kind" binding:"required,oneof=sale purchase"`
	Date           *time.Time               `json:"date"`
	Exempt         bool                     `json:"exempt"`
	Description    string                   `json:"description"`
	SupplierName   string                   `json:"supplier_name"`
	ClientName     string                   `json:"client_name"`
	DocumentNumber string                   `json:"document_number"`
	Lines          []TransactionLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToCreateInput convierte la solicitud al insumo del procesador
func (r TransactionRequest) ToCreateInput(businessID string) transaction.CreateInput {
	var date time.Time
	if r.Date != nil {
		date = *r.Date
	}

	lines := make([]transaction.CreateLineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, transaction.CreateLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	return transaction.CreateInput{
		BusinessID:     businessID,
		Kind:           transaction.Kind(r.Kind),
		Date:           date,
		Exempt:         r.Exempt,
		Description:    r.Description,
		SupplierName:   r.SupplierName,
		ClientName:     r.ClientName,
		DocumentNumber: r.DocumentNumber,
		Lines:          lines,
	}
}
