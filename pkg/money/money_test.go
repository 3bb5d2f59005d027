package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(1), Round(decimal.NewFromFloat(0.5)))
	assert.Equal(t, int64(-1), Round(decimal.NewFromFloat(-0.5)))
	assert.Equal(t, int64(2), Round(decimal.NewFromFloat(1.5)))
	assert.Equal(t, int64(1), Round(decimal.NewFromFloat(1.4999)))
}

func TestPercent(t *testing.T) {
	// tasa PPM de 0,25% sobre ventas de 100.000
	assert.Equal(t, int64(250), Percent(100000, decimal.NewFromFloat(0.0025)))
	// 10% AFP sobre sueldo bruto
	assert.Equal(t, int64(85000), Percent(850000, decimal.NewFromFloat(0.10)))
	// porcentaje con resultado fraccionario se redondea una sola vez
	assert.Equal(t, int64(5100), Percent(849999, decimal.NewFromFloat(0.006)))
}

func TestDivRound(t *testing.T) {
	iva := decimal.NewFromFloat(1.19)
	assert.Equal(t, int64(100000), DivRound(119000, iva))
	assert.Equal(t, int64(50000), DivRound(59500, iva))
	assert.Equal(t, int64(84), DivRound(100, iva))
}
