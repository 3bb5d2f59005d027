package payroll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreviredFileGolden(t *testing.T) {
	rows := []PreviredRow{
		{
			WorkerRUT:             "12345678-5",
			FirstName:             "María",
			PaternalSurname:       "Soto",
			MaternalSurname:       "Pérez",
			GrossPay:              850000,
			PensionDeduction:      85000,
			HealthDeduction:       59500,
			UnemploymentDeduction: 5100,
			IncomeTaxWithheld:     0,
		},
		{
			WorkerRUT:             "18972631-7",
			FirstName:             "Pedro",
			PaternalSurname:       "Fuentes",
			MaternalSurname:       "",
			GrossPay:              2000000,
			PensionDeduction:      200000,
			HealthDeduction:       140000,
			UnemploymentDeduction: 12000,
			IncomeTaxWithheld:     29740,
		},
	}

	got := BuildPreviredFile("76086428-5", 8, 2026, rows)

	want := "1|76086428-5|8|2026|\n" +
		"2|12345678-5|María|Soto|Pérez|850000|85000|59500|5100|0\n" +
		"2|18972631-7|Pedro|Fuentes||2000000|200000|140000|12000|29740\n" +
		"3|2|2850000|285000|199500|\n"

	assert.Equal(t, want, got)
}

func TestBuildPreviredFileEmpty(t *testing.T) {
	got := BuildPreviredFile("76086428-5", 1, 2026, nil)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1|76086428-5|1|2026|", lines[0])
	assert.Equal(t, "3|0|0|0|0|", lines[1])
}
