package filing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// Status es el estado del ciclo de vida de una declaración
type Status string

const (
	// StatusDraft admite recálculo y edición de montos
	StatusDraft Status = "draft"
	// StatusFiled es terminal: los montos quedan inmutables y solo se
	// registran metadatos de presentación (folio, fecha)
	StatusFiled Status = "filed"
)

// F29 es la declaración mensual de IVA y PPM de una empresa. Es única por
// empresa, mes y año; se crea en borrador al agregarse por primera vez las
// transacciones del período.
type F29 struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	TaxableSales     int64           `json:"taxable_sales"`
	ExemptSales      int64           `json:"exempt_sales"`
	TaxablePurchases int64           `json:"taxable_purchases"`
	ExemptPurchases  int64           `json:"exempt_purchases"`
	VATDebit         int64           `json:"vat_debit"`
	VATCredit        int64           `json:"vat_credit"`
	VATDetermined    int64           `json:"vat_determined"`
	PPMBase          int64           `json:"ppm_base"`
	PPMRate          decimal.Decimal `json:"ppm_rate"`
	PPMAmount        int64           `json:"ppm_amount"`
	TotalDue         int64           `json:"total_due"`

	Status    Status     `json:"status"`
	Folio     string     `json:"folio,omitempty"`
	FiledAt   *time.Time `json:"filed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewF29 crea la declaración mensual en borrador con los montos calculados
func NewF29(businessID string, period tax.Period, r tax.F29Result) *F29 {
	now := time.Now()
	f := &F29{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Month:      period.Month,
		Year:       period.Year,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.applyResult(r)
	return f
}

// Recompute reemplaza los montos de un borrador con un nuevo cálculo.
// Una declaración presentada no admite modificación de montos.
func (f *F29) Recompute(r tax.F29Result) error {
	if f.Status == StatusFiled {
		return apperr.Conflict("el F29 de %02d/%d ya fue declarado", f.Month, f.Year)
	}
	f.applyResult(r)
	f.UpdatedAt = time.Now()
	return nil
}

// MarkFiled ejecuta la transición borrador → declarado. Es de una sola vía;
// el folio del organismo receptor es opcional.
func (f *F29) MarkFiled(folio string, at time.Time) error {
	if f.Status == StatusFiled {
		return apperr.Conflict("el F29 de %02d/%d ya fue declarado", f.Month, f.Year)
	}
	if at.IsZero() {
		at = time.Now()
	}
	f.Status = StatusFiled
	f.Folio = folio
	f.FiledAt = &at
	f.UpdatedAt = time.Now()
	return nil
}

func (f *F29) applyResult(r tax.F29Result) {
	f.TaxableSales = r.TaxableSales
	f.ExemptSales = r.ExemptSales
	f.TaxablePurchases = r.TaxablePurchases
	f.ExemptPurchases = r.ExemptPurchases
	f.VATDebit = r.VATDebit
	f.VATCredit = r.VATCredit
	f.VATDetermined = r.VATDetermined
	f.PPMBase = r.PPMBase
	f.PPMRate = r.PPMRate
	f.PPMAmount = r.PPMAmount
	f.TotalDue = r.TotalDue
}

// Income devuelve el aporte de esta declaración al cálculo anual del F22
func (f *F29) Income() tax.F29Income {
	return tax.F29Income{
		TaxableSales: f.TaxableSales,
		ExemptSales:  f.ExemptSales,
		PPMAmount:    f.PPMAmount,
	}
}
