package transaction

import (
	"github.com/contapyme/contapyme/internal/domain/product"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// ResolveLine valida una línea solicitada contra su producto y devuelve la
// línea con precio y subtotal resueltos, más la variación de stock que el
// procesador debe aplicar (+cantidad en compras, −cantidad en ventas).
//
// En ventas el precio unitario se fuerza al precio de venta configurado del
// producto y se exige stock suficiente; en compras el precio debe venir en
// la solicitud y ser positivo.
func ResolveLine(p *product.Product, kind Kind, in CreateLineInput) (Line, int64, error) {
	if in.Quantity <= 0 {
		return Line{}, 0, apperr.Validation("la cantidad debe ser mayor que cero")
	}

	var unitPrice int64
	switch kind {
	case KindSale:
		if p.SalePrice <= 0 {
			return Line{}, 0, apperr.Validation("el producto %s no tiene precio de venta configurado", p.Name)
		}
		if p.CurrentStock < in.Quantity {
			return Line{}, 0, apperr.Conflict("stock insuficiente para %s: disponible %d, solicitado %d",
				p.Name, p.CurrentStock, in.Quantity)
		}
		unitPrice = p.SalePrice

	case KindPurchase:
		if in.UnitPrice == nil || *in.UnitPrice <= 0 {
			return Line{}, 0, apperr.Validation("el precio unitario de compra debe ser mayor que cero")
		}
		unitPrice = *in.UnitPrice

	default:
		return Line{}, 0, apperr.Validation("tipo de transacción desconocido: %s", kind)
	}

	line := Line{
		ProductID: p.ID,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		Subtotal:  in.Quantity * unitPrice,
	}

	delta := in.Quantity
	if kind == KindSale {
		delta = -in.Quantity
	}

	return line, delta, nil
}
