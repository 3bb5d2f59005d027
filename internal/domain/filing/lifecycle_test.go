package filing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/pkg/apperr"
)

func draftF29(t *testing.T) *F29 {
	t.Helper()
	result := tax.F29Result{
		TaxableSales:  100000,
		VATDebit:      19000,
		VATCredit:     9500,
		VATDetermined: 9500,
		PPMBase:       100000,
		PPMAmount:     250,
		TotalDue:      9750,
	}
	return NewF29("biz-1", tax.Period{Month: 3, Year: 2026}, result)
}

func TestNewF29StartsAsDraft(t *testing.T) {
	f := draftF29(t)

	assert.Equal(t, StatusDraft, f.Status)
	assert.Equal(t, int64(9750), f.TotalDue)
	assert.Nil(t, f.FiledAt)
}

func TestF29RecomputeDraft(t *testing.T) {
	f := draftF29(t)

	require.NoError(t, f.Recompute(tax.F29Result{TaxableSales: 200000, TotalDue: 500}))
	assert.Equal(t, int64(200000), f.TaxableSales)
	assert.Equal(t, int64(500), f.TotalDue)
}

func TestF29FiledIsImmutable(t *testing.T) {
	f := draftF29(t)
	filedAt := time.Date(2026, 4, 12, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.MarkFiled("F-123456", filedAt))
	assert.Equal(t, StatusFiled, f.Status)
	assert.Equal(t, "F-123456", f.Folio)
	require.NotNil(t, f.FiledAt)
	assert.Equal(t, filedAt, *f.FiledAt)

	// los montos de una declaración presentada no se tocan
	err := f.Recompute(tax.F29Result{TaxableSales: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, int64(100000), f.TaxableSales)

	// volver a declarar también es conflicto
	err = f.MarkFiled("F-999", time.Now())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "F-123456", f.Folio)
}

func TestF29MarkFiledDefaultsDate(t *testing.T) {
	f := draftF29(t)

	require.NoError(t, f.MarkFiled("", time.Time{}))
	require.NotNil(t, f.FiledAt)
	assert.WithinDuration(t, time.Now(), *f.FiledAt, time.Minute)
}

func TestF22Lifecycle(t *testing.T) {
	result := tax.F22Result{
		TotalIncome:   16000000,
		TaxableBase:   16000000,
		PPMPaid:       40000,
		TaxDetermined: 205840,
		Balance:       165840,
		Polarity:      tax.BalanceDue,
	}
	f := NewF22("biz-1", 2026, result)

	assert.Equal(t, StatusDraft, f.Status)
	assert.Equal(t, tax.BalanceDue, f.Polarity)

	require.NoError(t, f.MarkFiled("A-77", time.Time{}))
	assert.Equal(t, StatusFiled, f.Status)

	err := f.MarkFiled("A-78", time.Time{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestF29Income(t *testing.T) {
	f := draftF29(t)
	income := f.Income()

	assert.Equal(t, int64(100000), income.TaxableSales)
	assert.Equal(t, int64(0), income.ExemptSales)
	assert.Equal(t, int64(250), income.PPMAmount)
}
