package money

import "github.com/shopspring/decimal"

// Paquete money concentra el redondeo monetario de la aplicación. Los montos
// se manejan como pesos chilenos enteros (int64); todo redondeo es a la mitad
// alejándose de cero y se aplica una sola vez, en el punto documentado.

// Round redondea un decimal a pesos enteros
func Round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Percent aplica una tasa porcentual a un monto y redondea el resultado
func Percent(amount int64, rate decimal.Decimal) int64 {
	return Round(decimal.NewFromInt(amount).Mul(rate))
}

// DivRound divide un monto por un divisor decimal y redondea el resultado
func DivRound(amount int64, divisor decimal.Decimal) int64 {
	return Round(decimal.NewFromInt(amount).Div(divisor))
}
