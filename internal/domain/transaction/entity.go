package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/money"
)

// Kind define el tipo de movimiento comercial
type Kind string

const (
	// KindSale es una venta
	KindSale Kind = "sale"
	// KindPurchase es una compra
	KindPurchase Kind = "purchase"
)

// Valid informa si el tipo de movimiento es conocido
func (k Kind) Valid() bool {
	return k == KindSale || k == KindPurchase
}

// Transaction representa una venta o compra de la empresa. Es inmutable una
// vez creada; la única modificación permitida es la reversa (eliminación),
// que deshace sus efectos de inventario.
type Transaction struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id"`
	Kind           Kind      `json:"kind"`
	Date           time.Time `json:"date"`
	GrossAmount    int64     `json:"gross_amount"`
	NetAmount      int64     `json:"net_amount"`
	TaxAmount      int64     `json:"tax_amount"`
	Exempt         bool      `json:"exempt"`
	Description    string    `json:"description"`
	SupplierName   string    `json:"supplier_name,omitempty"`
	ClientName     string    `json:"client_name,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	Lines          []Line    `json:"lines,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Line es una línea de detalle que referencia un producto
type Line struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	ProductID     string `json:"product_id"`
	Quantity      int64  `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	Subtotal      int64  `json:"subtotal"`
}

// SplitGross separa un monto bruto en neto e impuesto. Es la única regla de
// redondeo del sistema para el IVA incluido: neto = round(bruto / divisor) y
// el impuesto absorbe el resto, de modo que bruto = neto + impuesto siempre.
// Para montos exentos el neto es el bruto completo y el impuesto es cero.
func SplitGross(gross int64, exempt bool, vatDivisor decimal.Decimal) (net, tax int64) {
	if exempt {
		return gross, 0
	}
	net = money.DivRound(gross, vatDivisor)
	tax = gross - net
	return net, tax
}

// New crea una transacción con su desglose de IVA ya calculado a partir de
// las líneas. Las líneas deben venir con subtotal resuelto por el procesador.
func New(businessID string, kind Kind, date time.Time, exempt bool, lines []Line, vatDivisor decimal.Decimal) (*Transaction, error) {
	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if !kind.Valid() {
		return nil, apperr.Validation("tipo de transacción desconocido: %s", kind)
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("la transacción debe tener al menos una línea")
	}

	var gross int64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, apperr.Validation("la cantidad debe ser mayor que cero")
		}
		gross += line.Subtotal
	}

	net, tax := SplitGross(gross, exempt, vatDivisor)

	t := &Transaction{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Kind:        kind,
		Date:        date,
		GrossAmount: gross,
		NetAmount:   net,
		TaxAmount:   tax,
		Exempt:      exempt,
		CreatedAt:   time.Now(),
	}

	for i := range lines {
		lines[i].ID = uuid.New().String()
		lines[i].TransactionID = t.ID
	}
	t.Lines = lines

	return t, nil
}
