package tax

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/money"
)

// Period identifica un período tributario mensual
type Period struct {
	Month int
	Year  int
}

// ValidatePeriod verifica que el período esté dentro de los rangos aceptados:
// mes 1 a 12 y año entre el piso configurado y el año actual más uno.
func ValidatePeriod(p Period, cfg Config, now time.Time) error {
	if p.Month < 1 || p.Month > 12 {
		return apperr.Validation("mes fuera de rango: %d", p.Month)
	}
	if p.Year < cfg.MinYear || p.Year > now.Year()+1 {
		return apperr.Validation("año fuera de rango: %d", p.Year)
	}
	return nil
}

// PeriodRange devuelve el rango de fechas [primer día, último día 23:59:59]
// del período
func PeriodRange(p Period) (from, to time.Time) {
	from = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}

// F29Result es el resultado puro del cálculo mensual de IVA y PPM
type F29Result struct {
	TaxableSales     int64
	ExemptSales      int64
	TaxablePurchases int64
	ExemptPurchases  int64
	VATDebit         int64
	VATCredit        int64
	VATDetermined    int64
	PPMBase          int64
	PPMRate          decimal.Decimal
	PPMAmount        int64
	TotalDue         int64
}

// ComputeF29 deriva el formulario 29 de un período a partir de sus
// transacciones. Los montos de neto e impuesto ya vienen resueltos en cada
// transacción (regla canónica de redondeo aplicada al crearla); aquí solo se
// agregan, nunca se recalculan.
func ComputeF29(txs []*transaction.Transaction, cfg Config) F29Result {
	r := F29Result{PPMRate: cfg.PPMRate}

	for _, t := range txs {
		switch t.Kind {
		case transaction.KindSale:
			if t.Exempt {
				r.ExemptSales += t.GrossAmount
			} else {
				r.TaxableSales += t.NetAmount
				r.VATDebit += t.TaxAmount
			}
		case transaction.KindPurchase:
			if t.Exempt {
				r.ExemptPurchases += t.GrossAmount
			} else {
				r.TaxablePurchases += t.NetAmount
				r.VATCredit += t.TaxAmount
			}
		}
	}

	r.VATDetermined = r.VATDebit - r.VATCredit

	// la base del PPM son las ventas totales, afectas (neto) más exentas (bruto)
	r.PPMBase = r.TaxableSales + r.ExemptSales
	r.PPMAmount = money.Percent(r.PPMBase, r.PPMRate)

	positive := r.VATDetermined
	if positive < 0 {
		positive = 0
	}
	r.TotalDue = positive + r.PPMAmount

	return r
}
