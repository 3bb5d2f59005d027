package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/pkg/apperr"
)

func validWorker(t *testing.T) *Worker {
	t.Helper()
	w, err := New("biz-1", "12.345.678-5", "María", "Soto", "Pérez",
		850000, "AFP Modelo", HealthFonasa, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return w
}

func TestNewNormalizesRUT(t *testing.T) {
	w := validWorker(t)

	assert.Equal(t, "12345678-5", w.RUT)
	assert.True(t, w.Active)
	assert.False(t, w.HasPrivateHealth())
}

func TestNewValidation(t *testing.T) {
	start := time.Now()

	tests := []struct {
		name   string
		mutate func() (*Worker, error)
	}{
		{"rut con dígito incorrecto", func() (*Worker, error) {
			return New("biz-1", "12.345.678-9", "Ana", "Rojas", "", 500000, "AFP Habitat", HealthFonasa, start)
		}},
		{"sueldo cero", func() (*Worker, error) {
			return New("biz-1", "12.345.678-5", "Ana", "Rojas", "", 0, "AFP Habitat", HealthFonasa, start)
		}},
		{"sin nombre", func() (*Worker, error) {
			return New("biz-1", "12.345.678-5", "", "Rojas", "", 500000, "AFP Habitat", HealthFonasa, start)
		}},
		{"salud desconocida", func() (*Worker, error) {
			return New("biz-1", "12.345.678-5", "Ana", "Rojas", "", 500000, "AFP Habitat", HealthSystem("mutual"), start)
		}},
		{"sin empresa", func() (*Worker, error) {
			return New("", "12.345.678-5", "Ana", "Rojas", "", 500000, "AFP Habitat", HealthFonasa, start)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.mutate()
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestDeactivateIsOneWay(t *testing.T) {
	w := validWorker(t)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, w.Deactivate(end))
	assert.False(t, w.Active)
	require.NotNil(t, w.EndDate)
	assert.Equal(t, end, *w.EndDate)

	err := w.Deactivate(end.AddDate(0, 1, 0))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}
