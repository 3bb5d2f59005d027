package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeF22Aggregation(t *testing.T) {
	cfg := DefaultConfig()
	table := cfg.GlobalComplementaryTable(2026)

	months := []F29Income{
		{TaxableSales: 5000000, ExemptSales: 200000, PPMAmount: 13000},
		{TaxableSales: 6000000, ExemptSales: 0, PPMAmount: 15000},
		{TaxableSales: 4500000, ExemptSales: 300000, PPMAmount: 12000},
	}

	result := ComputeF22(months, table)

	assert.Equal(t, int64(16000000), result.TotalIncome)
	assert.Equal(t, int64(40000), result.PPMPaid)
	assert.Equal(t, int64(0), result.DeductibleExpenses)
	assert.Equal(t, result.TotalIncome, result.TaxableBase)
	assert.Equal(t, table.Apply(result.TaxableBase), result.TaxDetermined)
}

func TestComputeF22PolarityDue(t *testing.T) {
	cfg := DefaultConfig()
	table := cfg.GlobalComplementaryTable(2026)

	// base sobre el tramo exento anual (13,5 UTA = 10.854.000) con PPM bajo
	result := ComputeF22([]F29Income{{TaxableSales: 20000000, PPMAmount: 1000}}, table)

	assert.Positive(t, result.TaxDetermined)
	assert.Equal(t, BalanceDue, result.Polarity)
	assert.Equal(t, result.TaxDetermined-result.PPMPaid, result.Balance)
}

func TestComputeF22PolarityRefund(t *testing.T) {
	cfg := DefaultConfig()
	table := cfg.GlobalComplementaryTable(2026)

	// ingresos dentro del tramo exento: todo el PPM pagado queda a favor
	result := ComputeF22([]F29Income{{TaxableSales: 4000000, PPMAmount: 10000}}, table)

	assert.Zero(t, result.TaxDetermined)
	assert.Equal(t, BalanceRefund, result.Polarity)
	assert.Equal(t, int64(10000), result.Balance)
}
