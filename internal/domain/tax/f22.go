package tax

// BalancePolarity etiqueta el signo del saldo anual del formulario 22
type BalancePolarity string

const (
	// BalanceDue indica impuesto por pagar (determinado mayor que PPM)
	BalanceDue BalancePolarity = "a_pagar"
	// BalanceRefund indica saldo a favor del contribuyente
	BalanceRefund BalancePolarity = "a_favor"
)

// F29Income es el aporte de un F29 mensual al cálculo anual
type F29Income struct {
	TaxableSales int64
	ExemptSales  int64
	PPMAmount    int64
}

// F22Result es el resultado puro del cálculo anual de impuesto a la renta
type F22Result struct {
	TotalIncome        int64
	DeductibleExpenses int64
	TaxableBase        int64
	PPMPaid            int64
	TaxDetermined      int64
	Balance            int64
	Polarity           BalancePolarity
}

// ComputeF22 agrega los F29 existentes del año y determina el impuesto anual
// con la tabla del global complementario. Bajo el régimen simplificado
// modelado los gastos deducibles son siempre cero. El saldo se informa en
// valor absoluto junto a su polaridad.
func ComputeF22(months []F29Income, table Table) F22Result {
	var r F22Result

	for _, m := range months {
		r.TotalIncome += m.TaxableSales + m.ExemptSales
		r.PPMPaid += m.PPMAmount
	}

	r.TaxableBase = r.TotalIncome - r.DeductibleExpenses
	r.TaxDetermined = table.Apply(r.TaxableBase)

	balance := r.TaxDetermined - r.PPMPaid
	r.Polarity = BalanceDue
	if balance < 0 {
		r.Polarity = BalanceRefund
		balance = -balance
	}
	r.Balance = balance

	return r
}
