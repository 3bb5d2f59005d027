package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigit(t *testing.T) {
	tests := []struct {
		number int64
		want   string
	}{
		{11111111, "1"},
		{22222222, "2"},
		{12345678, "5"},
		{76086428, "5"},
		{18972631, "7"},
		{9, "4"},
		{6, "K"},
		{10, "8"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Digit(tc.number), "número %d", tc.number)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"con puntos y guión", "12.345.678-5", "12345678-5", false},
		{"sin puntos", "12345678-5", "12345678-5", false},
		{"sin guión", "123456785", "12345678-5", false},
		{"k minúscula", "6-k", "6-K", false},
		{"dígito incorrecto", "12.345.678-9", "", true},
		{"letras en el cuerpo", "12.3A5.678-5", "", true},
		{"vacío", "", "", true},
		{"solo dígito", "5", "", true},
		{"cero", "0-0", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	got, err := Format("123456785")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", got)

	got, err = Format("18972631-7")
	require.NoError(t, err)
	assert.Equal(t, "18.972.631-7", got)

	got, err = Format("6K")
	require.NoError(t, err)
	assert.Equal(t, "6-K", got)
}
