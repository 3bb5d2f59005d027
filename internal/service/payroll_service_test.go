package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/business"
	"github.com/contapyme/contapyme/internal/domain/payroll"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func newPayrollFixture(t *testing.T) (*PayrollService, *worker.Worker, *business.Business, *fakeSettlementRepo) {
	t.Helper()

	biz, err := business.New("owner-1", "76.086.428-5", "Comercial Andes SpA", "Comercio minorista")
	require.NoError(t, err)

	w, err := worker.New(biz.ID, "12.345.678-5", "Ana", "Rojas", "Pérez",
		850000, "Modelo", worker.HealthFonasa, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	settlements := newFakeSettlementRepo()
	svc := NewPayrollService(newFakeWorkerRepo(w), settlements, newFakeBusinessRepo(biz),
		tax.DefaultConfig(), payroll.DefaultRates())
	svc.now = fixedNow

	return svc, w, biz, settlements
}

func TestPayrollServiceCreateSettlement(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)

	sett, err := svc.CreateSettlement(context.Background(), biz.ID, w.ID, 3, 2025, payroll.Input{})
	require.NoError(t, err)

	assert.Equal(t, 3, sett.Month)
	assert.Equal(t, 2025, sett.Year)
	assert.Equal(t, int64(850000), sett.GrossPay)
	assert.Equal(t, int64(85000), sett.PensionDeduction)
	assert.Equal(t, int64(59500), sett.HealthDeduction)
	assert.Equal(t, int64(5100), sett.UnemploymentDeduction)
	assert.Equal(t, int64(0), sett.IncomeTaxWithheld)
	assert.Equal(t, int64(700400), sett.NetPay)
	assert.False(t, sett.Paid)
}

func TestPayrollServiceCreateSettlementDuplicateFails(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)
	ctx := context.Background()

	_, err := svc.CreateSettlement(ctx, biz.ID, w.ID, 3, 2025, payroll.Input{})
	require.NoError(t, err)

	_, err = svc.CreateSettlement(ctx, biz.ID, w.ID, 3, 2025, payroll.Input{})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// otro período del mismo trabajador sí se admite
	_, err = svc.CreateSettlement(ctx, biz.ID, w.ID, 4, 2025, payroll.Input{})
	assert.NoError(t, err)
}

func TestPayrollServiceCreateSettlementUnknownWorker(t *testing.T) {
	svc, _, biz, _ := newPayrollFixture(t)

	_, err := svc.CreateSettlement(context.Background(), biz.ID, "no-existe", 3, 2025, payroll.Input{})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestPayrollServiceCreateSettlementValidatesPeriod(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)

	_, err := svc.CreateSettlement(context.Background(), biz.ID, w.ID, 13, 2025, payroll.Input{})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestPayrollServiceMarkPaid(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)
	ctx := context.Background()

	sett, err := svc.CreateSettlement(ctx, biz.ID, w.ID, 3, 2025, payroll.Input{})
	require.NoError(t, err)

	paidAt := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	paid, err := svc.MarkPaid(ctx, biz.ID, sett.ID, paidAt)
	require.NoError(t, err)

	assert.True(t, paid.Paid)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, paidAt, *paid.PaidAt)

	// pagar dos veces es un conflicto
	_, err = svc.MarkPaid(ctx, biz.ID, sett.ID, paidAt)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestPayrollServiceMarkPaidDefaultsToNow(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)
	ctx := context.Background()

	sett, err := svc.CreateSettlement(ctx, biz.ID, w.ID, 3, 2025, payroll.Input{})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, biz.ID, sett.ID, time.Time{})
	require.NoError(t, err)

	require.NotNil(t, paid.PaidAt)
	assert.False(t, paid.PaidAt.IsZero())
}

func TestPayrollServicePreviredFile(t *testing.T) {
	svc, w, biz, _ := newPayrollFixture(t)
	ctx := context.Background()

	_, err := svc.CreateSettlement(ctx, biz.ID, w.ID, 3, 2025, payroll.Input{})
	require.NoError(t, err)

	file, err := svc.PreviredFile(ctx, biz.ID, 3, 2025)
	require.NoError(t, err)

	expected := "1|76086428-5|3|2025|\n" +
		"2|12345678-5|Ana|Rojas|Pérez|850000|85000|59500|5100|0\n" +
		"3|1|850000|85000|59500|\n"
	assert.Equal(t, expected, file)
}

func TestPayrollServicePreviredFileEmptyPeriod(t *testing.T) {
	svc, _, biz, _ := newPayrollFixture(t)

	file, err := svc.PreviredFile(context.Background(), biz.ID, 7, 2025)
	require.NoError(t, err)

	assert.Equal(t, "1|76086428-5|7|2025|\n3|0|0|0|0|\n", file)
}
