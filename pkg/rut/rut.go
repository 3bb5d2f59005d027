package rut

import (
	"fmt"
	"strconv"
	"strings"
)

// Paquete rut implementa la validación y el formateo del Rol Único
// Tributario chileno (módulo 11). Un RUT se acepta con o sin puntos,
// con guión opcional y dígito verificador numérico o K.

// ErrInvalido indica un RUT con formato o dígito verificador incorrecto
type ErrInvalido struct {
	RUT string
}

func (e *ErrInvalido) Error() string {
	return fmt.Sprintf("rut inválido: %s", e.RUT)
}

// Digit calcula el dígito verificador para la parte numérica del RUT
func Digit(number int64) string {
	sum := 0
	factor := 2
	for n := number; n > 0; n /= 10 {
		sum += int(n%10) * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	switch dv := 11 - sum%11; dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(dv)
	}
}

// Normalize limpia el RUT y lo devuelve en forma canónica NNNNNNNN-D.
// Devuelve error si el formato o el dígito verificador no son válidos.
func Normalize(raw string) (string, error) {
	clean := strings.ToUpper(strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw))
	if len(clean) < 2 {
		return "", &ErrInvalido{RUT: raw}
	}

	body, dv := clean[:len(clean)-1], string(clean[len(clean)-1])
	number, err := strconv.ParseInt(body, 10, 64)
	if err != nil || number <= 0 {
		return "", &ErrInvalido{RUT: raw}
	}

	if Digit(number) != dv {
		return "", &ErrInvalido{RUT: raw}
	}

	return fmt.Sprintf("%d-%s", number, dv), nil
}

// Validate informa si raw es un RUT válido
func Validate(raw string) error {
	_, err := Normalize(raw)
	return err
}

// Format devuelve el RUT con puntos de miles y guión (12.345.678-5)
func Format(raw string) (string, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return "", err
	}

	parts := strings.SplitN(normalized, "-", 2)
	body, dv := parts[0], parts[1]

	var sb strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	return sb.String() + "-" + dv, nil
}
