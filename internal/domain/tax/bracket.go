package tax

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/contapyme/contapyme/pkg/money"
)

// Bracket es un tramo de una tabla progresiva de impuestos. El impuesto del
// tramo se calcula como base × Rate − Rebaja, donde Rebaja hace que la función
// por tramos sea continua en el límite inferior respecto del tramo anterior.
type Bracket struct {
	Lower  decimal.Decimal
	Upper  decimal.Decimal
	Rate   decimal.Decimal
	Rebaja decimal.Decimal
}

// Table es una secuencia ordenada de tramos que cubre [0, +inf) sin huecos
type Table []Bracket

// Band describe un tramo como múltiplo de la unidad monetaria anual (UTM o
// UTA). UpperUnits cero indica tramo sin límite superior (el último).
type Band struct {
	UpperUnits decimal.Decimal
	Rate       decimal.Decimal
}

// NewTable construye una tabla de tramos a partir del valor de la unidad
// monetaria y las bandas expresadas en múltiplos de esa unidad. La rebaja de
// cada tramo se deriva para garantizar continuidad en cada límite inferior;
// los límites no se redondean.
func NewTable(unitValue int64, bands []Band) Table {
	unit := decimal.NewFromInt(unitValue)
	table := make(Table, 0, len(bands))

	lower := decimal.Zero
	rebaja := decimal.Zero
	prevRate := decimal.Zero

	for i, band := range bands {
		upper := decimal.NewFromInt(math.MaxInt64)
		if !band.UpperUnits.IsZero() {
			upper = band.UpperUnits.Mul(unit)
		}

		if i > 0 {
			// rebaja_i = rebaja_{i-1} + lower_i × (rate_i − rate_{i-1})
			rebaja = rebaja.Add(lower.Mul(band.Rate.Sub(prevRate)))
		}

		table = append(table, Bracket{
			Lower:  lower,
			Upper:  upper,
			Rate:   band.Rate,
			Rebaja: rebaja,
		})

		lower = upper
		prevRate = band.Rate
	}

	return table
}

// Apply devuelve el impuesto para la base imponible dada: se ubica el único
// tramo con Lower <= base < Upper y se redondea round(base × rate − rebaja)
// una sola vez, al final. Sin tramo aplicable el resultado es 0.
func (t Table) Apply(base int64) int64 {
	b := decimal.NewFromInt(base)
	for _, bracket := range t {
		if b.GreaterThanOrEqual(bracket.Lower) && b.LessThan(bracket.Upper) {
			return money.Round(b.Mul(bracket.Rate).Sub(bracket.Rebaja))
		}
	}
	return 0
}
