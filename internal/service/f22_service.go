package service

import (
	"context"
	"time"

	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// F22Service orquesta la declaración anual de renta a partir de los F29
// existentes del año
type F22Service struct {
	f22s filing.F22Repository
	f29s filing.F29Repository
	cfg  tax.Config
}

// NewF22Service crea el servicio del formulario 22
func NewF22Service(f22s filing.F22Repository, f29s filing.F29Repository, cfg tax.Config) *F22Service {
	return &F22Service{f22s: f22s, f29s: f29s, cfg: cfg}
}

// GetOrCreate devuelve la declaración anual del año. Requiere al menos un
// F29 del año (no necesariamente declarado); si la declaración ya existe se
// retorna sin recalcular.
func (s *F22Service) GetOrCreate(ctx context.Context, businessID string, year int) (*filing.F22, error) {
	existing, err := s.f22s.FindByYear(ctx, businessID, year)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	monthlies, err := s.f29s.ListByYear(ctx, businessID, year)
	if err != nil {
		return nil, err
	}
	if len(monthlies) == 0 {
		return nil, apperr.NotFound("no existen F29 del año %d para calcular la renta anual", year)
	}

	incomes := make([]tax.F29Income, 0, len(monthlies))
	for _, m := range monthlies {
		incomes = append(incomes, m.Income())
	}

	result := tax.ComputeF22(incomes, s.cfg.GlobalComplementaryTable(year))
	return s.f22s.Create(ctx, filing.NewF22(businessID, year, result))
}

// MarkFiled ejecuta la transición borrador → declarado de la declaración anual
func (s *F22Service) MarkFiled(ctx context.Context, businessID string, year int, folio string, at time.Time) (*filing.F22, error) {
	f, err := s.f22s.FindByYear(ctx, businessID, year)
	if err != nil {
		return nil, err
	}
	if err := f.MarkFiled(folio, at); err != nil {
		return nil, err
	}
	if err := s.f22s.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
