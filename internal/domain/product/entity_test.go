package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/pkg/apperr"
)

func validProduct(t *testing.T) *Product {
	t.Helper()
	p, err := New("biz-1", "Harina 1kg", "HAR-001", "Abarrotes", "unidad", 10, 800, 1190)
	require.NoError(t, err)
	return p
}

func TestNewStartsActiveWithZeroStock(t *testing.T) {
	p := validProduct(t)

	assert.True(t, p.Active)
	assert.Zero(t, p.CurrentStock)
	assert.Equal(t, "unidad", p.UnitOfMeasure)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Product, error)
	}{
		{"sin empresa", func() (*Product, error) {
			return New("", "Harina", "HAR-001", "", "", 0, 0, 0)
		}},
		{"sin nombre", func() (*Product, error) {
			return New("biz-1", "", "HAR-001", "", "", 0, 0, 0)
		}},
		{"stock mínimo negativo", func() (*Product, error) {
			return New("biz-1", "Harina", "HAR-001", "", "", -1, 0, 0)
		}},
		{"precio negativo", func() (*Product, error) {
			return New("biz-1", "Harina", "HAR-001", "", "", 0, -100, 0)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestBelowMinimum(t *testing.T) {
	p := validProduct(t)

	p.CurrentStock = 11
	assert.False(t, p.BelowMinimum())

	p.CurrentStock = 10
	assert.True(t, p.BelowMinimum())

	p.CurrentStock = 3
	assert.True(t, p.BelowMinimum())
}

func TestUpdateKeepsStock(t *testing.T) {
	p := validProduct(t)
	p.CurrentStock = 42

	err := p.Update("Harina 1kg premium", "HAR-001", "Abarrotes", "", 5, 900, 1290)
	require.NoError(t, err)

	assert.Equal(t, "Harina 1kg premium", p.Name)
	assert.Equal(t, int64(5), p.MinimumStock)
	assert.Equal(t, int64(42), p.CurrentStock)
	assert.Equal(t, "unidad", p.UnitOfMeasure)
}

func TestDeactivateIsOneWay(t *testing.T) {
	p := validProduct(t)

	require.NoError(t, p.Deactivate())
	assert.False(t, p.Active)

	err := p.Deactivate()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}
