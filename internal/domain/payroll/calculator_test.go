package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func testWorker(t *testing.T, salary int64, health worker.HealthSystem) *worker.Worker {
	t.Helper()
	w, err := worker.New("biz-1", "12.345.678-5", "María", "Soto", "Pérez",
		salary, "AFP Modelo", health, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return w
}

func secondCategoryTable() tax.Table {
	return tax.DefaultConfig().SecondCategoryTable(2026)
}

func TestCalculateBaseOnly(t *testing.T) {
	w := testWorker(t, 850000, worker.HealthFonasa)

	r, err := Calculate(w, Input{}, secondCategoryTable(), DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, int64(7083), r.OvertimeHourlyRate) // round(850000/180 × 1,5)
	assert.Equal(t, int64(850000), r.GrossPay)
	assert.Equal(t, int64(85000), r.PensionDeduction)
	assert.Equal(t, int64(59500), r.HealthDeduction)
	assert.False(t, r.HealthPrivate)
	assert.Equal(t, int64(5100), r.UnemploymentDeduction)
	assert.Equal(t, int64(700400), r.TaxableBase)
	assert.Zero(t, r.IncomeTaxWithheld, "base bajo 13,5 UTM queda exenta")
	assert.Equal(t, int64(149600), r.TotalDeductions)
	assert.Equal(t, int64(700400), r.NetPay)

	assert.Equal(t, int64(20400), r.EmployerUnemployment)
	assert.Equal(t, int64(6545), r.WorkInjuryInsurance)
	assert.Equal(t, int64(876945), r.EmployerCost)
}

func TestCalculateWithOvertimeAndBonus(t *testing.T) {
	w := testWorker(t, 850000, worker.HealthIsapre)

	r, err := Calculate(w, Input{OvertimeHours: 10, Bonus: 50000, OtherDeductions: 20000},
		secondCategoryTable(), DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, int64(70830), r.OvertimeAmount)
	assert.Equal(t, int64(970830), r.GrossPay)
	assert.Equal(t, int64(97083), r.PensionDeduction)
	assert.Equal(t, int64(67958), r.HealthDeduction)
	assert.True(t, r.HealthPrivate, "el 7% se enruta a la isapre")
	assert.Equal(t, int64(5825), r.UnemploymentDeduction)
	assert.Equal(t, int64(799964), r.TaxableBase)
	assert.Zero(t, r.IncomeTaxWithheld)
	assert.Equal(t, int64(190866), r.TotalDeductions)
	assert.Equal(t, int64(779964), r.NetPay)
}

func TestCalculateWithSingleTax(t *testing.T) {
	w := testWorker(t, 2000000, worker.HealthFonasa)

	r, err := Calculate(w, Input{}, secondCategoryTable(), DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, int64(1648000), r.TaxableBase)
	// tramo del 4% con UTM 67.000: round(1.648.000 × 0,04 − 36.180)
	assert.Equal(t, int64(29740), r.IncomeTaxWithheld)
	assert.Equal(t, int64(1618260), r.NetPay)
}

func TestCalculateConservation(t *testing.T) {
	rates := DefaultRates()
	table := secondCategoryTable()

	salaries := []int64{400000, 850000, 1234567, 2000000, 5000000, 9999999}
	for _, salary := range salaries {
		w := testWorker(t, salary, worker.HealthFonasa)
		r, err := Calculate(w, Input{OvertimeHours: 7, Bonus: 33333, OtherDeductions: 1111}, table, rates)
		require.NoError(t, err)

		// bruto − descuentos = líquido, exacto en aritmética entera
		assert.Equal(t, r.GrossPay-r.TotalDeductions, r.NetPay, "sueldo %d", salary)
		assert.Equal(t, r.GrossPay, r.BaseSalary+r.OvertimeAmount+r.Bonus, "sueldo %d", salary)
	}
}

func TestCalculateValidation(t *testing.T) {
	w := testWorker(t, 850000, worker.HealthFonasa)
	table := secondCategoryTable()

	tests := []struct {
		name string
		in   Input
	}{
		{"horas extra negativas", Input{OvertimeHours: -1}},
		{"bono negativo", Input{Bonus: -500}},
		{"otros descuentos negativos", Input{OtherDeductions: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(w, tc.in, table, DefaultRates())
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}
