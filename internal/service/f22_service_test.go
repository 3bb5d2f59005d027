package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func seedF29(t *testing.T, repo *fakeF29Repo, businessID string, month, year int, r tax.F29Result) {
	t.Helper()
	_, err := repo.Create(context.Background(), filing.NewF29(businessID, tax.Period{Month: month, Year: year}, r))
	require.NoError(t, err)
}

func TestF22ServiceGetOrCreateRequiresMonthlies(t *testing.T) {
	svc := NewF22Service(newFakeF22Repo(), newFakeF29Repo(), tax.DefaultConfig())

	_, err := svc.GetOrCreate(context.Background(), "biz-1", 2024)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestF22ServiceGetOrCreateBelowExemptThreshold(t *testing.T) {
	f29s := newFakeF29Repo()
	seedF29(t, f29s, "biz-1", 1, 2024, tax.F29Result{TaxableSales: 4000000, PPMAmount: 10000})
	seedF29(t, f29s, "biz-1", 2, 2024, tax.F29Result{TaxableSales: 4000000, PPMAmount: 10000})
	svc := NewF22Service(newFakeF22Repo(), f29s, tax.DefaultConfig())

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 2024)
	require.NoError(t, err)

	// 8.000.000 queda bajo el tramo exento de 13,5 UTA del 2024
	assert.Equal(t, int64(8000000), f.TotalIncome)
	assert.Equal(t, int64(8000000), f.TaxableBase)
	assert.Equal(t, int64(0), f.TaxDetermined)
	assert.Equal(t, int64(20000), f.PPMPaid)
	assert.Equal(t, int64(20000), f.Balance)
	assert.Equal(t, tax.BalanceRefund, f.Polarity)
	assert.Equal(t, filing.StatusDraft, f.Status)
}

func TestF22ServiceGetOrCreateTaxDue(t *testing.T) {
	f29s := newFakeF29Repo()
	seedF29(t, f29s, "biz-1", 1, 2024, tax.F29Result{TaxableSales: 20000000, PPMAmount: 50000})
	svc := NewF22Service(newFakeF22Repo(), f29s, tax.DefaultConfig())

	f, err := svc.GetOrCreate(context.Background(), "biz-1", 2024)
	require.NoError(t, err)

	// segundo tramo 2024: 20.000.000 × 4% − 10.530.000 × 4% = 378.800
	assert.Equal(t, int64(378800), f.TaxDetermined)
	assert.Equal(t, int64(328800), f.Balance)
	assert.Equal(t, tax.BalanceDue, f.Polarity)
}

func TestF22ServiceGetOrCreateIsIdempotent(t *testing.T) {
	f29s := newFakeF29Repo()
	seedF29(t, f29s, "biz-1", 1, 2024, tax.F29Result{TaxableSales: 1000000, PPMAmount: 2500})
	svc := NewF22Service(newFakeF22Repo(), f29s, tax.DefaultConfig())

	first, err := svc.GetOrCreate(context.Background(), "biz-1", 2024)
	require.NoError(t, err)

	// un F29 agregado después no cambia la declaración ya creada
	seedF29(t, f29s, "biz-1", 2, 2024, tax.F29Result{TaxableSales: 9000000, PPMAmount: 22500})

	second, err := svc.GetOrCreate(context.Background(), "biz-1", 2024)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1000000), second.TotalIncome)
}

func TestF22ServiceMarkFiledTransition(t *testing.T) {
	f29s := newFakeF29Repo()
	seedF29(t, f29s, "biz-1", 1, 2024, tax.F29Result{TaxableSales: 1000000, PPMAmount: 2500})
	svc := NewF22Service(newFakeF22Repo(), f29s, tax.DefaultConfig())
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx, "biz-1", 2024)
	require.NoError(t, err)

	filedAt := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	filed, err := svc.MarkFiled(ctx, "biz-1", 2024, "F22-77", filedAt)
	require.NoError(t, err)

	assert.Equal(t, filing.StatusFiled, filed.Status)
	assert.Equal(t, "F22-77", filed.Folio)

	_, err = svc.MarkFiled(ctx, "biz-1", 2024, "F22-78", filedAt)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}
