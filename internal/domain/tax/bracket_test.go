package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableDerivesRebajas(t *testing.T) {
	table := NewTable(66000, progressiveBands)
	require.Len(t, table, len(progressiveBands))

	// tramo exento
	assert.True(t, table[0].Lower.IsZero())
	assert.True(t, table[0].Rate.IsZero())
	assert.True(t, table[0].Rebaja.IsZero())

	// segundo tramo: rebaja = 13,5 UTM × 4%
	wantRebaja := decimal.NewFromFloat(13.5).Mul(decimal.NewFromInt(66000)).Mul(decimal.NewFromFloat(0.04))
	assert.True(t, table[1].Rebaja.Equal(wantRebaja),
		"rebaja del segundo tramo: esperaba %s, obtuve %s", wantRebaja, table[1].Rebaja)
}

func TestTableContinuityAtBoundaries(t *testing.T) {
	// en cada límite superior, el impuesto calculado con la fórmula del tramo
	// inferior debe coincidir exactamente con la fórmula del tramo siguiente
	for _, unit := range []int64{65000, 66000, 780000, 792000} {
		table := NewTable(unit, progressiveBands)
		for i := 0; i < len(table)-1; i++ {
			boundary := table[i].Upper
			lowSide := boundary.Mul(table[i].Rate).Sub(table[i].Rebaja)
			highSide := boundary.Mul(table[i+1].Rate).Sub(table[i+1].Rebaja)
			assert.True(t, lowSide.Equal(highSide),
				"discontinuidad en unidad %d, tramo %d: %s vs %s", unit, i, lowSide, highSide)
		}
	}
}

func TestTableApply(t *testing.T) {
	table := NewTable(66000, progressiveBands)

	tests := []struct {
		name string
		base int64
		want int64
	}{
		{"base cero", 0, 0},
		{"dentro del tramo exento", 500000, 0},
		{"justo bajo el primer límite", 890999, 0},
		{"tramo del 4%", 1000000, 4360},
		{"tramo del 8%", 2000000, 45160},
		{"base negativa sin tramo aplicable", -1000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.Apply(tc.base))
		})
	}
}

func TestTableApplyRoundsOnce(t *testing.T) {
	// tabla artificial con tasa que produce fracción: round se aplica al final
	table := NewTable(1000, []Band{
		{UpperUnits: decimal.NewFromInt(1), Rate: decimal.Zero},
		{UpperUnits: decimal.Zero, Rate: decimal.NewFromFloat(0.035)},
	})

	// 1.015 × 0.035 − 1000×0.035 = 35.525 − 35 = 0.525 → 1
	assert.Equal(t, int64(1), table.Apply(1015))
}

func TestLookupUnitFallsBack(t *testing.T) {
	byYear := map[int]int64{2024: 100, 2026: 300}

	assert.Equal(t, int64(100), lookupUnit(byYear, 2024))
	assert.Equal(t, int64(100), lookupUnit(byYear, 2025), "año sin valor usa el anterior")
	assert.Equal(t, int64(300), lookupUnit(byYear, 2030))
	assert.Equal(t, int64(100), lookupUnit(byYear, 2000), "año anterior al primero usa el más antiguo")
}
