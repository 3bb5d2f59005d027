package filing

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// F22 es la declaración anual de impuesto a la renta de una empresa, única
// por empresa y año. Agrega los F29 existentes del año; no exige que los
// doce meses estén declarados.
type F22 struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Year       int    `json:"year"`

	TotalIncome        int64               `json:"total_income"`
	DeductibleExpenses int64               `json:"deductible_expenses"`
	TaxableBase        int64               `json:"taxable_base"`
	PPMPaid            int64               `json:"ppm_paid"`
	TaxDetermined      int64               `json:"tax_determined"`
	Balance            int64               `json:"balance"`
	Polarity           tax.BalancePolarity `json:"polarity"`

	Status    Status     `json:"status"`
	Folio     string     `json:"folio,omitempty"`
	FiledAt   *time.Time `json:"filed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewF22 crea la declaración anual en borrador con los montos calculados
func NewF22(businessID string, year int, r tax.F22Result) *F22 {
	now := time.Now()
	return &F22{
		ID:                 uuid.New().String(),
		BusinessID:         businessID,
		Year:               year,
		TotalIncome:        r.TotalIncome,
		DeductibleExpenses: r.DeductibleExpenses,
		TaxableBase:        r.TaxableBase,
		PPMPaid:            r.PPMPaid,
		TaxDetermined:      r.TaxDetermined,
		Balance:            r.Balance,
		Polarity:           r.Polarity,
		Status:             StatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// MarkFiled ejecuta la transición borrador → declarado, de una sola vía
func (f *F22) MarkFiled(folio string, at time.Time) error {
	if f.Status == StatusFiled {
		return apperr.Conflict("el F22 del año %d ya fue declarado", f.Year)
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
