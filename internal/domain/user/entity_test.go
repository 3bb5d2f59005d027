package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contapyme/contapyme/pkg/apperr"
)

func TestNewHashesPassword(t *testing.T) {
	u, err := New("Ana Rojas", "Ana@Ejemplo.CL", "secreto123")
	require.NoError(t, err)

	assert.Equal(t, "ana@ejemplo.cl", u.Email)
	assert.True(t, u.Active)
	assert.NotEqual(t, "secreto123", u.Password)
	assert.True(t, u.CheckPassword("secreto123"))
	assert.False(t, u.CheckPassword("otra"))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"sin nombre", "", "ana@ejemplo.cl", "secreto123"},
		{"email sin arroba", "Ana", "ana.ejemplo.cl", "secreto123"},
		{"contraseña corta", "Ana", "ana@ejemplo.cl", "corta"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.userName, tc.email, tc.password)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}
