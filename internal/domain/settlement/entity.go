package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/internal/domain/payroll"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// Settlement es la liquidación de sueldo de un trabajador para un período.
// Es única por trabajador, mes y año y se crea una sola vez: no existe
// upsert. Una vez calculada solo admite la transición no pagada → pagada.
type Settlement struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	WorkerID   string `json:"worker_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	BaseSalary         int64 `json:"base_salary"`
	OvertimeHourlyRate int64 `json:"overtime_hourly_rate"`
	OvertimeHours      int64 `json:"overtime_hours"`
	OvertimeAmount     int64 `json:"overtime_amount"`
	Bonus              int64 `json:"bonus"`
	GrossPay           int64 `json:"gross_pay"`

	PensionDeduction      int64 `json:"pension_deduction"`
	HealthDeduction       int64 `json:"health_deduction"`
	HealthPrivate         bool  `json:"health_private"`
	UnemploymentDeduction int64 `json:"unemployment_deduction"`
	TaxableBase           int64 `json:"taxable_base"`
	IncomeTaxWithheld     int64 `json:"income_tax_withheld"`
	OtherDeductions       int64 `json:"other_deductions"`
	TotalDeductions       int64 `json:"total_deductions"`
	NetPay                int64 `json:"net_pay"`

	EmployerUnemployment int64 `json:"employer_unemployment"`
	WorkInjuryInsurance  int64 `json:"work_injury_insurance"`
	EmployerCost         int64 `json:"employer_cost"`

	Paid      bool       `json:"paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// New materializa el resultado del cálculo de remuneraciones como una
// liquidación no pagada
func New(businessID, workerID string, month, year int, r payroll.Result) *Settlement {
	return &Settlement{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		WorkerID:   workerID,
		Month:      month,
		Year:       year,

		BaseSalary:         r.BaseSalary,
		OvertimeHourlyRate: r.OvertimeHourlyRate,
		OvertimeHours:      r.OvertimeHours,
		OvertimeAmount:     r.OvertimeAmount,
		Bonus:              r.Bonus,
		GrossPay:           r.GrossPay,

		PensionDeduction:      r.PensionDeduction,
		HealthDeduction:       r.HealthDeduction,
		HealthPrivate:         r.HealthPrivate,
		UnemploymentDeduction: r.UnemploymentDeduction,
		TaxableBase:           r.TaxableBase,
		IncomeTaxWithheld:     r.IncomeTaxWithheld,
		OtherDeductions:       r.OtherDeductions,
		TotalDeductions:       r.TotalDeductions,
		NetPay:                r.NetPay,

		EmployerUnemployment: r.EmployerUnemployment,
		WorkInjuryInsurance:  r.WorkInjuryInsurance,
		EmployerCost:         r.EmployerCost,

		CreatedAt: time.Now(),
	}
}

// MarkPaid registra el pago de la liquidación. La transición es terminal;
// si no se indica fecha se usa el momento actual.
func (s *Settlement) MarkPaid(at time.Time) error {
	if s.Paid {
		return apperr.Conflict("la liquidación ya está pagada")
	}
	if at.IsZero() {
		at = time.Now()
	}
	s.Paid = true
	s.PaidAt = &at
	return nil
}
