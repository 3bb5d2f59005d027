package service

import (
	"context"
	"time"

	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// F29Service orquesta el ciclo de vida del formulario 29: creación perezosa
// por período, recálculo de borradores y presentación.
type F29Service struct {
	filings      filing.F29Repository
	transactions transaction.Repository
	cfg          tax.Config
	now          func() time.Time
}

// NewF29Service crea el servicio del formulario 29
func NewF29Service(filings filing.F29Repository, transactions transaction.Repository, cfg tax.Config) *F29Service {
	return &F29Service{
		filings:      filings,
		transactions: transactions,
		cfg:          cfg,
		now:          time.Now,
	}
}

// GetOrCreate devuelve la declaración del período. Si ya existe se retorna
// sin recalcular (lectura idempotente); si no, se agrega el período desde
// las transacciones y se persiste como borrador. Ante una carrera de
// creación duplicada, el repositorio devuelve la fila ganadora.
func (s *F29Service) GetOrCreate(ctx context.Context, businessID string, month, year int) (*filing.F29, error) {
	period := tax.Period{Month: month, Year: year}
	if err := tax.ValidatePeriod(period, s.cfg, s.now()); err != nil {
		return nil, err
	}

	existing, err := s.filings.FindByPeriod(ctx, businessID, month, year)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	result, err := s.compute(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	return s.filings.Create(ctx, filing.NewF29(businessID, period, result))
}

// Recompute rehace los montos de un borrador a partir de las transacciones
// actuales del período
func (s *F29Service) Recompute(ctx context.Context, businessID, id string) (*filing.F29, error) {
	f, err := s.filings.FindByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	result, err := s.compute(ctx, businessID, tax.Period{Month: f.Month, Year: f.Year})
	if err != nil {
		return nil, err
	}

	if err := f.Recompute(result); err != nil {
		return nil, err
	}
	if err := s.filings.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// MarkFiled ejecuta la transición borrador → declarado
func (s *F29Service) MarkFiled(ctx context.Context, businessID, id, folio string, at time.Time) (*filing.F29, error) {
	f, err := s.filings.FindByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := f.MarkFiled(folio, at); err != nil {
		return nil, err
	}
	if err := s.filings.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ListYear lista las declaraciones mensuales de un año
func (s *F29Service) ListYear(ctx context.Context, businessID string, year int) ([]*filing.F29, error) {
	return s.filings.ListByYear(ctx, businessID, year)
}

// YearCompleteness informa qué meses del año aún no tienen un F29 en estado
// declarado. No bloquea la creación del F22; solo reporta completitud.
func (s *F29Service) YearCompleteness(ctx context.Context, businessID string, year int) (missing []int, complete bool, err error) {
	filings, err := s.filings.ListByYear(ctx, businessID, year)
	if err != nil {
		return nil, false, err
	}

	filed := make(map[int]bool, 12)
	for _, f := range filings {
		if f.Status == filing.StatusFiled {
			filed[f.Month] = true
		}
	}

	missing = make([]int, 0, 12)
	for month := 1; month <= 12; month++ {
		if !filed[month] {
			missing = append(missing, month)
		}
	}

	return missing, len(missing) == 0, nil
}

func (s *F29Service) compute(ctx context.Context, businessID string, period tax.Period) (tax.F29Result, error) {
	from, to := tax.PeriodRange(period)
	txs, err := s.transactions.ListByPeriod(ctx, businessID, from, to)
	if err != nil {
		return tax.F29Result{}, err
	}
	return tax.ComputeF29(txs, s.cfg), nil
}
