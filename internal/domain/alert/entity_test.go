package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/pkg/apperr"
)

func TestNewStartsUnreadAndUnresolved(t *testing.T) {
	a, err := New("biz-1", KindLowStock, "Stock bajo", "Harina 1kg bajo el mínimo",
		PriorityHigh, map[string]string{"product_id": "prod-1"})
	require.NoError(t, err)

	assert.False(t, a.Read)
	assert.False(t, a.Resolved)
	assert.Equal(t, "prod-1", a.Metadata["product_id"])
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Alert, error)
	}{
		{"sin empresa", func() (*Alert, error) {
			return New("", KindManual, "Título", "", PriorityLow, nil)
		}},
		{"sin título", func() (*Alert, error) {
			return New("biz-1", KindManual, "", "", PriorityLow, nil)
		}},
		{"prioridad desconocida", func() (*Alert, error) {
			return New("biz-1", KindManual, "Título", "", Priority("crítica"), nil)
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

func TestResolveImpliesRead(t *testing.T) {
	a, err := New("biz-1", KindManual, "Revisar caja", "", PriorityMedium, nil)
	require.NoError(t, err)

	a.Resolve()

	assert.True(t, a.Read)
	assert.True(t, a.Resolved)
}
