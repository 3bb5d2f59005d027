package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("mes fuera de rango: %d", 13), KindValidation},
		{"not found", NotFound("producto no encontrado"), KindNotFound},
		{"permission", Permission("pertenece a otra empresa"), KindPermission},
		{"conflict", Conflict("ya declarado"), KindConflict},
		{"internal", Internal("error de base de datos", errors.New("boom")), KindInternal},
		{"untyped", errors.New("algo"), KindInternal},
		{"wrapped", fmt.Errorf("contexto: %w", Conflict("duplicado")), KindConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Permission("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("x")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("conexión rechazada")
	err := Internal("error al consultar ventas", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "conexión rechazada")
}
