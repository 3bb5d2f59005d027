package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/settlement"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// SettlementRepository implementa la interfaz settlement.Repository. La
// unicidad por trabajador, mes y año la garantiza una restricción única.
type SettlementRepository struct {
	db *pgxpool.Pool
}

// NewSettlementRepository crea una nueva instancia de SettlementRepository
func NewSettlementRepository(db *pgxpool.Pool) settlement.Repository {
	return &SettlementRepository{db: db}
}

const settlementColumns = `id, business_id, worker_id, month, year,
	base_salary, overtime_hourly_rate, overtime_hours, overtime_amount, bonus, gross_pay,
	pension_deduction, health_deduction, health_private, unemployment_deduction,
	taxable_base, income_tax_withheld, other_deductions, total_deductions, net_pay,
	employer_unemployment, work_injury_insurance, employer_cost,
	paid, paid_at, created_at`

// Create implementa settlement.Repository.Create
func (r *SettlementRepository) Create(ctx context.Context, s *settlement.Settlement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO settlements (`+settlementColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`,
		s.ID, s.BusinessID, s.WorkerID, s.Month, s.Year,
		s.BaseSalary, s.OvertimeHourlyRate, s.OvertimeHours, s.OvertimeAmount, s.Bonus, s.GrossPay,
		s.PensionDeduction, s.HealthDeduction, s.HealthPrivate, s.UnemploymentDeduction,
		s.TaxableBase, s.IncomeTaxWithheld, s.OtherDeductions, s.TotalDeductions, s.NetPay,
		s.EmployerUnemployment, s.WorkInjuryInsurance, s.EmployerCost,
		s.Paid, s.PaidAt, s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("ya existe una liquidación de %02d/%d para el trabajador", s.Month, s.Year)
		}
		return apperr.Internal("error al crear la liquidación", err)
	}
	return nil
}

// FindByID implementa settlement.Repository.FindByID
func (r *SettlementRepository) FindByID(ctx context.Context, businessID, id string) (*settlement.Settlement, error) {
	return r.findOne(ctx, `id = $1 AND business_id = $2`, id, businessID)
}

// FindByWorkerPeriod implementa settlement.Repository.FindByWorkerPeriod
func (r *SettlementRepository) FindByWorkerPeriod(ctx context.Context, workerID string, month, year int) (*settlement.Settlement, error) {
	return r.findOne(ctx, `worker_id = $1 AND month = $2 AND year = $3`, workerID, month, year)
}

// ListByPeriod implementa settlement.Repository.ListByPeriod
func (r *SettlementRepository) ListByPeriod(ctx context.Context, businessID string, month, year int) ([]*settlement.Settlement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+settlementColumns+` FROM settlements
		 WHERE business_id = $1 AND month = $2 AND year = $3
		 ORDER BY created_at`,
		businessID, month, year)
	if err != nil {
		return nil, apperr.Internal("error al listar liquidaciones", err)
	}
	defer rows.Close()

	return scanSettlements(rows)
}

// ListByWorker implementa settlement.Repository.ListByWorker
func (r *SettlementRepository) ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*settlement.Settlement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+settlementColumns+` FROM settlements
		 WHERE worker_id = $1
		 ORDER BY year DESC, month DESC
		 LIMIT $2 OFFSET $3`,
		workerID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar liquidaciones del trabajador", err)
	}
	defer rows.Close()

	return scanSettlements(rows)
}

// MarkPaid implementa settlement.Repository.MarkPaid
func (r *SettlementRepository) MarkPaid(ctx context.Context, s *settlement.Settlement) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE settlements SET paid = $1, paid_at = $2 WHERE id = $3 AND business_id = $4`,
		s.Paid, s.PaidAt, s.ID, s.BusinessID)
	if err != nil {
		return apperr.Internal("error al registrar el pago", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("liquidación no encontrada: %s", s.ID)
	}
	return nil
}

func (r *SettlementRepository) findOne(ctx context.Context, where string, args ...any) (*settlement.Settlement, error) {
	row := r.db.QueryRow(ctx, `SELECT `+settlementColumns+` FROM settlements WHERE `+where, args...)
	s, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("liquidación no encontrada")
		}
		return nil, err
	}
	return s, nil
}

func scanSettlement(row pgx.Row) (*settlement.Settlement, error) {
	var s settlement.Settlement
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.WorkerID, &s.Month, &s.Year,
		&s.BaseSalary, &s.OvertimeHourlyRate, &s.OvertimeHours, &s.OvertimeAmount, &s.Bonus, &s.GrossPay,
		&s.PensionDeduction, &s.HealthDeduction, &s.HealthPrivate, &s.UnemploymentDeduction,
		&s.TaxableBase, &s.IncomeTaxWithheld, &s.OtherDeductions, &s.TotalDeductions, &s.NetPay,
		&s.EmployerUnemployment, &s.WorkInjuryInsurance, &s.EmployerCost,
		&s.Paid, &s.PaidAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, apperr.Internal("error al leer la liquidación", err)
	}
	return &s, nil
}

func scanSettlements(rows pgx.Rows) ([]*settlement.Settlement, error) {
	var settlements []*settlement.Settlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}
