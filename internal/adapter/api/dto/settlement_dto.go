package dto

import (
	"time"

	"github.com/contapyme/contapyme/internal/domain/payroll"
)

// SettlementRequest representa la solicitud de cálculo de una liquidación
type SettlementRequest struct {
	WorkerID        string `json:"worker_id" binding:"required"`
	Month           int    `json:"month" binding:"required,min=1,max=12"`
	Year            int    `json:"year" binding:"required"`
	OvertimeHours   int64  `json:"overtime_hours" binding:"gte=0"`
	Bonus           int64  `json:"bonus" binding:"gte=0"`
	OtherDeductions int64  `json:"other_deductions" binding:"gte=0"`
}

// ToPayrollInput convierte la solicitud al insumo del calculador
func (r SettlementRequest) ToPayrollInput() payroll.Input {
	return payroll.Input{
		OvertimeHours:   r.OvertimeHours,
		Bonus:           r.Bonus,
		OtherDeductions: r.OtherDeductions,
	}
}

// SettlementMarkPaidRequest registra el pago; sin fecha se usa el momento actual
type SettlementMarkPaidRequest struct {
	PaidAt *time.Time `json:"paid_at"`
}
