package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind clasifica un error de la aplicación según la taxonomía del dominio
type Kind int

const (
	// KindValidation indica entrada malformada o fuera de rango
	KindValidation Kind = iota
	// KindNotFound indica que la entidad referenciada no existe
	KindNotFound
	// KindPermission indica que la entidad pertenece a otra empresa
	KindPermission
	// KindConflict indica duplicidad, stock insuficiente o registro terminal
	KindConflict
	// KindInternal indica falla de persistencia o error inesperado
	KindInternal
)

// Error es el error tipado que atraviesa todas las capas de la aplicación
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implementa la interfaz error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap expone la causa para errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation crea un error de validación
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound crea un error de entidad no encontrada
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Permission crea un error de acceso a recursos de otra empresa
func Permission(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPermission, Message: fmt.Sprintf(format, args...)}
}

// Conflict crea un error de conflicto de estado
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal envuelve una falla de infraestructura
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf devuelve la clasificación de err; los errores no tipados son internos
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// IsKind informa si err pertenece a la clasificación k
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// HTTPStatus traduce la clasificación de err al código HTTP del contrato
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPermission:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
