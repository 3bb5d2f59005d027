package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func mustTx(t *testing.T, businessID string, kind transaction.Kind, date time.Time, gross int64, exempt bool) *transaction.Transaction {
	t.Helper()
	lines := []transaction.Line{{ProductID: "prod-1", Quantity: 1, UnitPrice: gross, Subtotal: gross}}
	tx, err := transaction.New(businessID, kind, date, exempt, lines, tax.DefaultConfig().VATDivisor())
	require.NoError(t, err)
	return tx
}

func newF29Fixture(txs ...*transaction.Transaction) (*F29Service, *fakeF29Repo, *fakeTxRepo) {
	filings := newFakeF29Repo()
	transactions := &fakeTxRepo{txs: txs}
	svc := NewF29Service(filings, transactions, tax.DefaultConfig())
	svc.now = fixedNow
	return svc, filings, transactions
}

func TestF29ServiceGetOrCreateComputesDraft(t *testing.T) {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newF29Fixture(
		mustTx(t, "biz-1", transaction.KindSale, march, 119000, false),
		mustTx(t, "biz-1", transaction.KindPurchase, march, 59500, false),
	)

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, filing.StatusDraft, f.Status)
	assert.Equal(t, 3, f.Month)
	assert.Equal(t, 2025, f.Year)
	assert.Equal(t, int64(100000), f.TaxableSales)
	assert.Equal(t, int64(50000), f.TaxablePurchases)
	assert.Equal(t, int64(19000), f.VATDebit)
	assert.Equal(t, int64(9500), f.VATCredit)
	assert.Equal(t, int64(9500), f.VATDetermined)
	assert.Equal(t, int64(100000), f.PPMBase)
	assert.Equal(t, int64(250), f.PPMAmount)
	assert.Equal(t, int64(9750), f.TotalDue)
}

func TestF29ServiceGetOrCreateIgnoresOtherPeriods(t *testing.T) {
	svc, _, _ := newF29Fixture(
		mustTx(t, "biz-1", transaction.KindSale, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 119000, false),
		mustTx(t, "biz-1", transaction.KindSale, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 238000, false),
		mustTx(t, "biz-2", transaction.KindSale, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 595000, false),
	)

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), f.TaxableSales)
	assert.Equal(t, int64(19000), f.VATDebit)
}

func TestF29ServiceGetOrCreateIsIdempotent(t *testing.T) {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, _, transactions := newF29Fixture(mustTx(t, "biz-1", transaction.KindSale, march, 119000, false))

	first, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	second, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, transactions.listPeriodCalls, "la segunda lectura no debe recalcular")
}

func TestF29ServiceGetOrCreateValidatesPeriod(t *testing.T) {
	svc, _, _ := newF29Fixture()

	cases := []struct {
		name  string
		month int
		year  int
	}{
		{"mes cero", 0, 2025},
		{"mes trece", 13, 2025},
		{"año bajo el mínimo", 6, 2019},
		{"año demasiado futuro", 6, 2027},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetOrCreate(context.Background(), "biz-1", tc.month, tc.year)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestF29ServiceRecomputeRefreshesDraft(t *testing.T) {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, _, transactions := newF29Fixture(mustTx(t, "biz-1", transaction.KindSale, march, 119000, false))

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)
	require.Equal(t, int64(19000), f.VATDebit)

	transactions.txs = append(transactions.txs,
		mustTx(t, "biz-1", transaction.KindSale, march, 119000, false))

	updated, err := svc.Recompute(context.Background(), "biz-1", f.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), updated.TaxableSales)
	assert.Equal(t, int64(38000), updated.VATDebit)
	assert.Equal(t, filing.StatusDraft, updated.Status)
}

func TestF29ServiceRecomputeFiledFails(t *testing.T) {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newF29Fixture(mustTx(t, "biz-1", transaction.KindSale, march, 119000, false))

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	_, err = svc.MarkFiled(context.Background(), "biz-1", f.ID, "F-1001", fixedNow())
	require.NoError(t, err)

	_, err = svc.Recompute(context.Background(), "biz-1", f.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestF29ServiceMarkFiledTransition(t *testing.T) {
	march := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, _, _ := newF29Fixture(mustTx(t, "biz-1", transaction.KindSale, march, 119000, false))

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 3, 2025)
	require.NoError(t, err)

	filed, err := svc.MarkFiled(context.Background(), "biz-1", f.ID, "F-1001", fixedNow())
	require.NoError(t, err)

	assert.Equal(t, filing.StatusFiled, filed.Status)
	assert.Equal(t, "F-1001", filed.Folio)
	require.NotNil(t, filed.FiledAt)
	assert.Equal(t, fixedNow(), *filed.FiledAt)

	// declarar dos veces es un conflicto
	_, err = svc.MarkFiled(context.Background(), "biz-1", f.ID, "F-1002", fixedNow())
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestF29ServiceYearCompleteness(t *testing.T) {
	svc, _, transactions := newF29Fixture()
	ctx := context.Background()

	missing, complete, err := svc.YearCompleteness(ctx, "biz-1", 2024)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Len(t, missing, 12)

	// enero declarado, febrero solo en borrador
	for month := 1; month <= 2; month++ {
		transactions.txs = append(transactions.txs,
			mustTx(t, "biz-1", transaction.KindSale, time.Date(2024, time.Month(month), 5, 0, 0, 0, 0, time.UTC), 119000, false))
		f, err := svc.GetOrCreate(ctx, "biz-1", month, 2024)
		require.NoError(t, err)
		if month == 1 {
			_, err = svc.MarkFiled(ctx, "biz-1", f.ID, "F-100", fixedNow())
			require.NoError(t, err)
		}
	}

	missing, complete, err = svc.YearCompleteness(ctx, "biz-1", 2024)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, missing)

	for month := 2; month <= 12; month++ {
		transactions.txs = append(transactions.txs,
			mustTx(t, "biz-1", transaction.KindSale, time.Date(2024, time.Month(month), 5, 0, 0, 0, 0, time.UTC), 119000, false))
		f, err := svc.GetOrCreate(ctx, "biz-1", month, 2024)
		require.NoError(t, err)
		_, err = svc.MarkFiled(ctx, "biz-1", f.ID, "F-100", fixedNow())
		require.NoError(t, err)
	}

	missing, complete, err = svc.YearCompleteness(ctx, "biz-1", 2024)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Empty(t, missing)
}
