package service

import (
	"context"
	"time"

	"github.com/contapyme/contapyme/internal/domain/business"
	"github.com/contapyme/contapyme/internal/domain/payroll"
	"github.com/contapyme/contapyme/internal/domain/settlement"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// PayrollService orquesta el cálculo de liquidaciones, su pago y la
// generación del archivo de cotizaciones Previred
type PayrollService struct {
	workers     worker.Repository
	settlements settlement.Repository
	businesses  business.Repository
	cfg         tax.Config
	rates       payroll.Rates
	now         func() time.Time
}

// NewPayrollService crea el servicio de remuneraciones
func NewPayrollService(workers worker.Repository, settlements settlement.Repository,
	businesses business.Repository, cfg tax.Config, rates payroll.Rates) *PayrollService {
	return &PayrollService{
		workers:     workers,
		settlements: settlements,
		businesses:  businesses,
		cfg:         cfg,
		rates:       rates,
		now:         time.Now,
	}
}

// CreateSettlement calcula y persiste la liquidación de un trabajador para
// un período. Las liquidaciones se crean una sola vez: si ya existe una
// para el trabajador, mes y año, la operación falla con conflicto.
func (s *PayrollService) CreateSettlement(ctx context.Context, businessID, workerID string,
	month, year int, in payroll.Input) (*settlement.Settlement, error) {

	if err := tax.ValidatePeriod(tax.Period{Month: month, Year: year}, s.cfg, s.now()); err != nil {
		return nil, err
	}

	w, err := s.workers.FindByID(ctx, businessID, workerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.settlements.FindByWorkerPeriod(ctx, workerID, month, year); err == nil {
		return nil, apperr.Conflict("ya existe una liquidación de %02d/%d para el trabajador", month, year)
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	result, err := payroll.Calculate(w, in, s.cfg.SecondCategoryTable(year), s.rates)
	if err != nil {
		return nil, err
	}

	sett := settlement.New(businessID, workerID, month, year, result)
	if err := s.settlements.Create(ctx, sett); err != nil {
		return nil, err
	}
	return sett, nil
}

// MarkPaid registra el pago de una liquidación; si at es cero se usa ahora
func (s *PayrollService) MarkPaid(ctx context.Context, businessID, id string, at time.Time) (*settlement.Settlement, error) {
	sett, err := s.settlements.FindByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := sett.MarkPaid(at); err != nil {
		return nil, err
	}
	if err := s.settlements.MarkPaid(ctx, sett); err != nil {
		return nil, err
	}
	return sett, nil
}

// PreviredFile genera el archivo de cotizaciones del período con una línea
// por liquidación existente
func (s *PayrollService) PreviredFile(ctx context.Context, businessID string, month, year int) (string, error) {
	biz, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return "", err
	}

	settlements, err := s.settlements.ListByPeriod(ctx, businessID, month, year)
	if err != nil {
		return "", err
	}

	rows := make([]payroll.PreviredRow, 0, len(settlements))
	for _, sett := range settlements {
		w, err := s.workers.FindByID(ctx, businessID, sett.WorkerID)
		if err != nil {
			return "", err
		}
		rows = append(rows, payroll.PreviredRow{
			WorkerRUT:             w.RUT,
			FirstName:             w.FirstName,
			PaternalSurname:       w.PaternalSurname,
			MaternalSurname:       w.MaternalSurname,
			GrossPay:              sett.GrossPay,
			PensionDeduction:      sett.PensionDeduction,
			HealthDeduction:       sett.HealthDeduction,
			UnemploymentDeduction: sett.UnemploymentDeduction,
			IncomeTaxWithheld:     sett.IncomeTaxWithheld,
		})
	}

	return payroll.BuildPreviredFile(biz.RUT, month, year, rows), nil
}
