package payroll

import (
	"fmt"
	"strings"
)

// PreviredRow es una línea de detalle del archivo de cotizaciones. Los
// montos provienen de la liquidación del trabajador para el período.
type PreviredRow struct {
	WorkerRUT             string
	FirstName             string
	PaternalSurname       string
	MaternalSurname       string
	GrossPay              int64
	PensionDeduction      int64
	HealthDeduction       int64
	UnemploymentDeduction int64
	IncomeTaxWithheld     int64
}

// BuildPreviredFile genera el archivo de cotizaciones en el formato fijo
// delimitado por pipes que consume el portal previsional. El orden de los
// campos y el delimitador son parte del contrato y no pueden alterarse:
//
//	1|rutEmpresa|mes|año|
//	2|rutTrabajador|nombres|apPaterno|apMaterno|bruto|afp|salud|cesantia|impuesto
//	3|cantidad|sumaBruto|sumaAfp|sumaSalud|
func BuildPreviredFile(businessRUT string, month, year int, rows []PreviredRow) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "1|%s|%d|%d|\n", businessRUT, month, year)

	var sumGross, sumPension, sumHealth int64
	for _, row := range rows {
		fmt.Fprintf(&sb, "2|%s|%s|%s|%s|%d|%d|%d|%d|%d\n",
			row.WorkerRUT,
			row.FirstName,
			row.PaternalSurname,
			row.MaternalSurname,
			row.GrossPay,
			row.PensionDeduction,
			row.HealthDeduction,
			row.UnemploymentDeduction,
			row.IncomeTaxWithheld)

		sumGross += row.GrossPay
		sumPension += row.PensionDeduction
		sumHealth += row.HealthDeduction
	}

	fmt.Fprintf(&sb, "3|%d|%d|%d|%d|\n", len(rows), sumGross, sumPension, sumHealth)

	return sb.String()
}
