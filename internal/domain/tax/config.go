package tax

import (
	"os"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config reúne las constantes tributarias inyectadas en los calculadores.
// Los valores de UTM y UTA están indexados por año vigente; agregar un año
// nuevo no requiere cambios de código. Las cifras incluidas son referenciales,
// no una transcripción exacta de la normativa.
type Config struct {
	// VATRate es la tasa de IVA incluida en los montos brutos (19%)
	VATRate decimal.Decimal
	// PPMRate es la tasa del pago provisional mensual sobre las ventas
	PPMRate decimal.Decimal
	// MinYear es el primer año tributario aceptado por los calculadores
	MinYear int
	// UTMByYear es el valor en pesos de la UTM por año (tabla de segunda categoría)
	UTMByYear map[int]int64
	// UTAByYear es el valor en pesos de la UTA por año (tabla global complementario)
	UTAByYear map[int]int64
}

// Bandas progresivas compartidas por la segunda categoría (mensual, UTM) y el
// global complementario (anual, UTA), expresadas en múltiplos de la unidad.
var progressiveBands = []Band{
	{UpperUnits: decimal.NewFromFloat(13.5), Rate: decimal.Zero},
	{UpperUnits: decimal.NewFromInt(30), Rate: decimal.NewFromFloat(0.04)},
	{UpperUnits: decimal.NewFromInt(50), Rate: decimal.NewFromFloat(0.08)},
	{UpperUnits: decimal.NewFromInt(70), Rate: decimal.NewFromFloat(0.135)},
	{UpperUnits: decimal.NewFromInt(90), Rate: decimal.NewFromFloat(0.23)},
	{UpperUnits: decimal.NewFromInt(120), Rate: decimal.NewFromFloat(0.304)},
	{UpperUnits: decimal.NewFromInt(310), Rate: decimal.NewFromFloat(0.35)},
	{UpperUnits: decimal.Zero, Rate: decimal.NewFromFloat(0.40)},
}

// DefaultConfig devuelve la configuración tributaria por defecto. PPM_RATE y
// TAX_MIN_YEAR pueden sobreescribirse por variables de entorno.
func DefaultConfig() Config {
	cfg := Config{
		VATRate: decimal.NewFromFloat(0.19),
		PPMRate: decimal.NewFromFloat(0.0025),
		MinYear: 2020,
		UTMByYear: map[int]int64{
			2024: 65000,
			2025: 66000,
			2026: 67000,
		},
		UTAByYear: map[int]int64{
			2024: 780000,
			2025: 792000,
			2026: 804000,
		},
	}

	if v := os.Getenv("PPM_RATE"); v != "" {
		if rate, err := decimal.NewFromString(v); err == nil {
			cfg.PPMRate = rate
		}
	}
	if v := os.Getenv("TAX_MIN_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			cfg.MinYear = year
		}
	}

	return cfg
}

// VATDivisor devuelve el divisor para extraer el neto de un bruto con IVA (1,19)
func (c Config) VATDivisor() decimal.Decimal {
	return decimal.NewFromInt(1).Add(c.VATRate)
}

// SecondCategoryTable devuelve la tabla mensual de impuesto único de segunda
// categoría para el año dado
func (c Config) SecondCategoryTable(year int) Table {
	return NewTable(lookupUnit(c.UTMByYear, year), progressiveBands)
}

// GlobalComplementaryTable devuelve la tabla anual del impuesto global
// complementario para el año dado
func (c Config) GlobalComplementaryTable(year int) Table {
	return NewTable(lookupUnit(c.UTAByYear, year), progressiveBands)
}

// lookupUnit busca el valor de la unidad para el año; si el año no está en la
// tabla usa el año configurado más cercano hacia atrás, o el más antiguo.
func lookupUnit(byYear map[int]int64, year int) int64 {
	if v, ok := byYear[year]; ok {
		return v
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	value := byYear[years[0]]
	for _, y := range years {
		if y > year {
			break
		}
		value = byYear[y]
	}
	return value
}
