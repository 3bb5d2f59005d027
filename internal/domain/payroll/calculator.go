package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/money"
)

// Rates reúne las tasas previsionales usadas por el cálculo de liquidaciones.
// Valores referenciales, inyectados para poder ajustarlos sin tocar código.
type Rates struct {
	// Pension es la cotización obligatoria de AFP (10%)
	Pension decimal.Decimal
	// Health es la cotización de salud, Fonasa o isapre (7%)
	Health decimal.Decimal
	// UnemploymentWorker es el aporte del trabajador al seguro de cesantía (0,6%)
	UnemploymentWorker decimal.Decimal
	// UnemploymentEmployer es el aporte del empleador al seguro de cesantía (2,4%)
	UnemploymentEmployer decimal.Decimal
	// WorkInjury es la prima de la mutual de accidentes del trabajo (0,77%)
	WorkInjury decimal.Decimal
	// MonthlyHours es la jornada mensual estándar usada para la hora extra
	MonthlyHours int64
	// OvertimeFactor es el recargo de la hora extraordinaria (1,5)
	OvertimeFactor decimal.Decimal
}

// DefaultRates devuelve las tasas previsionales por defecto
func DefaultRates() Rates {
	return Rates{
		Pension:              decimal.NewFromFloat(0.10),
		Health:               decimal.NewFromFloat(0.07),
		UnemploymentWorker:   decimal.NewFromFloat(0.006),
		UnemploymentEmployer: decimal.NewFromFloat(0.024),
		WorkInjury:           decimal.NewFromFloat(0.0077),
		MonthlyHours:         180,
		OvertimeFactor:       decimal.NewFromFloat(1.5),
	}
}

// Input son los antecedentes variables del período de una liquidación
type Input struct {
	OvertimeHours   int64
	Bonus           int64
	OtherDeductions int64
}

// Result es el detalle completo de una liquidación calculada
type Result struct {
	BaseSalary         int64
	OvertimeHourlyRate int64
	OvertimeHours      int64
	OvertimeAmount     int64
	Bonus              int64
	GrossPay           int64

	PensionDeduction      int64
	HealthDeduction       int64
	HealthPrivate         bool
	UnemploymentDeduction int64
	TaxableBase           int64
	IncomeTaxWithheld     int64
	OtherDeductions       int64
	TotalDeductions       int64
	NetPay                int64

	EmployerUnemployment int64
	WorkInjuryInsurance  int64
	EmployerCost         int64
}

// Calculate deriva la liquidación de un trabajador para un período. Cada
// descuento porcentual se redondea de forma independiente sobre el bruto;
// el impuesto único se obtiene de la tabla de segunda categoría sobre la
// base tributable. Se cumple exacto: bruto − descuentos = líquido.
func Calculate(w *worker.Worker, in Input, table tax.Table, rates Rates) (Result, error) {
	if in.OvertimeHours < 0 {
		return Result{}, apperr.Validation("las horas extra no pueden ser negativas")
	}
	if in.Bonus < 0 {
		return Result{}, apperr.Validation("los bonos no pueden ser negativos")
	}
	if in.OtherDeductions < 0 {
		return Result{}, apperr.Validation("los otros descuentos no pueden ser negativos")
	}

	r := Result{
		BaseSalary:      w.BaseSalary,
		OvertimeHours:   in.OvertimeHours,
		Bonus:           in.Bonus,
		OtherDeductions: in.OtherDeductions,
		HealthPrivate:   w.HasPrivateHealth(),
	}

	// valor hora extra: round(base / jornada × recargo)
	r.OvertimeHourlyRate = money.Round(decimal.NewFromInt(w.BaseSalary).
		Div(decimal.NewFromInt(rates.MonthlyHours)).
		Mul(rates.OvertimeFactor))
	r.OvertimeAmount = in.OvertimeHours * r.OvertimeHourlyRate

	r.GrossPay = w.BaseSalary + r.OvertimeAmount + in.Bonus

	r.PensionDeduction = money.Percent(r.GrossPay, rates.Pension)
	r.HealthDeduction = money.Percent(r.GrossPay, rates.Health)
	r.UnemploymentDeduction = money.Percent(r.GrossPay, rates.UnemploymentWorker)

	r.TaxableBase = r.GrossPay - r.PensionDeduction - r.HealthDeduction - r.UnemploymentDeduction
	r.IncomeTaxWithheld = table.Apply(r.TaxableBase)

	r.TotalDeductions = r.PensionDeduction + r.HealthDeduction + r.UnemploymentDeduction +
		r.IncomeTaxWithheld + in.OtherDeductions
	r.NetPay = r.GrossPay - r.TotalDeductions

	// costo empleador: se informa, no se descuenta del trabajador
	r.EmployerUnemployment = money.Percent(r.GrossPay, rates.UnemploymentEmployer)
	r.WorkInjuryInsurance = money.Percent(r.GrossPay, rates.WorkInjury)
	r.EmployerCost = r.GrossPay + r.EmployerUnemployment + r.WorkInjuryInsurance

	return r, nil
}
