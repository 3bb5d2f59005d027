package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/pkg/apperr"
)

var vatDivisor = decimal.NewFromFloat(1.19)

func TestSplitGross(t *testing.T) {
	tests := []struct {
		name    string
		gross   int64
		exempt  bool
		wantNet int64
		wantTax int64
	}{
		{"afecto exacto", 119000, false, 100000, 19000},
		{"afecto con redondeo", 100, false, 84, 16},
		{"afecto chico", 1, false, 1, 0},
		{"exento", 40000, true, 40000, 0},
		{"cero", 0, false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			net, tax := SplitGross(tc.gross, tc.exempt, vatDivisor)
			assert.Equal(t, tc.wantNet, net)
			assert.Equal(t, tc.wantTax, tax)
			// invariante: bruto = neto + impuesto, siempre
			assert.Equal(t, tc.gross, net+tax)
		})
	}
}

func TestNewComputesTotals(t *testing.T) {
	lines := []Line{
		{ProductID: "p1", Quantity: 2, UnitPrice: 29750, Subtotal: 59500},
		{ProductID: "p2", Quantity: 1, UnitPrice: 59500, Subtotal: 59500},
	}

	tx, err := New("biz-1", KindSale, time.Now(), false, lines, vatDivisor)
	require.NoError(t, err)

	assert.Equal(t, int64(119000), tx.GrossAmount)
	assert.Equal(t, int64(100000), tx.NetAmount)
	assert.Equal(t, int64(19000), tx.TaxAmount)
	assert.NotEmpty(t, tx.ID)

	for _, line := range tx.Lines {
		assert.Equal(t, tx.ID, line.TransactionID)
		assert.NotEmpty(t, line.ID)
	}
}

func TestNewValidation(t *testing.T) {
	now := time.Now()
	line := Line{ProductID: "p1", Quantity: 1, UnitPrice: 100, Subtotal: 100}

	tests := []struct {
		name       string
		businessID string
		kind       Kind
		lines      []Line
	}{
		{"sin empresa", "", KindSale, []Line{line}},
		{"tipo desconocido", "biz-1", Kind("transfer"), []Line{line}},
		{"sin líneas", "biz-1", KindSale, nil},
		{"cantidad cero", "biz-1", KindSale, []Line{{ProductID: "p1", Quantity: 0, Subtotal: 0}}},
		{"cantidad negativa", "biz-1", KindPurchase, []Line{{ProductID: "p1", Quantity: -3, Subtotal: 100}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.businessID, tc.kind, now, false, tc.lines, vatDivisor)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestNewExempt(t *testing.T) {
	lines := []Line{{ProductID: "p1", Quantity: 4, UnitPrice: 10000, Subtotal: 40000}}

	tx, err := New("biz-1", KindSale, time.Now(), true, lines, vatDivisor)
	require.NoError(t, err)

	assert.Equal(t, int64(40000), tx.GrossAmount)
	assert.Equal(t, int64(40000), tx.NetAmount)
	assert.Zero(t, tx.TaxAmount)
}
