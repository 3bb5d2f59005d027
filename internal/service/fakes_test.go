package service

import (
	"context"
	"sort"
	"time"

	"github.com/contapyme/contapyme/internal/domain/business"
	"github.com/contapyme/contapyme/internal/domain/filing"
	"github.com/contapyme/contapyme/internal/domain/settlement"
	"github.com/contapyme/contapyme/internal/domain/transaction"
	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// Implementaciones en memoria de los repositorios, para probar los
// servicios sin base de datos.

type fakeF29Repo struct {
	byID map[string]*filing.F29
}

func newFakeF29Repo() *fakeF29Repo {
	return &fakeF29Repo{byID: make(map[string]*filing.F29)}
}

func (r *fakeF29Repo) Create(_ context.Context, f *filing.F29) (*filing.F29, error) {
	for _, existing := range r.byID {
		if existing.BusinessID == f.BusinessID && existing.Month == f.Month && existing.Year == f.Year {
			// el perdedor de la carrera recibe la fila ganadora
			return existing, nil
		}
	}
	r.byID[f.ID] = f
	return f, nil
}

func (r *fakeF29Repo) FindByID(_ context.Context, businessID, id string) (*filing.F29, error) {
	f, ok := r.byID[id]
	if !ok || f.BusinessID != businessID {
		return nil, apperr.NotFound("F29 no encontrado: %s", id)
	}
	return f, nil
}

func (r *fakeF29Repo) FindByPeriod(_ context.Context, businessID string, month, year int) (*filing.F29, error) {
	for _, f := range r.byID {
		if f.BusinessID == businessID && f.Month == month && f.Year == year {
			return f, nil
		}
	}
	return nil, apperr.NotFound("no existe F29 de %02d/%d", month, year)
}

func (r *fakeF29Repo) ListByYear(_ context.Context, businessID string, year int) ([]*filing.F29, error) {
	var out []*filing.F29
	for _, f := range r.byID {
		if f.BusinessID == businessID && f.Year == year {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (r *fakeF29Repo) Update(_ context.Context, f *filing.F29) error {
	r.byID[f.ID] = f
	return nil
}

type fakeF22Repo struct {
	byID map[string]*filing.F22
}

func newFakeF22Repo() *fakeF22Repo {
	return &fakeF22Repo{byID: make(map[string]*filing.F22)}
}

func (r *fakeF22Repo) Create(_ context.Context, f *filing.F22) (*filing.F22, error) {
	for _, existing := range r.byID {
		if existing.BusinessID == f.BusinessID && existing.Year == f.Year {
			return existing, nil
		}
	}
	r.byID[f.ID] = f
	return f, nil
}

func (r *fakeF22Repo) FindByYear(_ context.Context, businessID string, year int) (*filing.F22, error) {
	for _, f := range r.byID {
		if f.BusinessID == businessID && f.Year == year {
			return f, nil
		}
	}
	return nil, apperr.NotFound("no existe F22 del año %d", year)
}

func (r *fakeF22Repo) Update(_ context.Context, f *filing.F22) error {
	r.byID[f.ID] = f
	return nil
}

type fakeTxRepo struct {
	txs             []*transaction.Transaction
	listPeriodCalls int
}

func (r *fakeTxRepo) CreateWithInventory(_ context.Context, _ transaction.CreateInput) (*transaction.Transaction, error) {
	return nil, apperr.Internal("no implementado en el fake", nil)
}

func (r *fakeTxRepo) FindByID(_ context.Context, _, id string) (*transaction.Transaction, error) {
	return nil, apperr.NotFound("transacción no encontrada: %s", id)
}

func (r *fakeTxRepo) List(_ context.Context, _ string, _, _ int) ([]*transaction.Transaction, error) {
	return r.txs, nil
}

func (r *fakeTxRepo) ListByPeriod(_ context.Context, businessID string, from, to time.Time) ([]*transaction.Transaction, error) {
	r.listPeriodCalls++
	var out []*transaction.Transaction
	for _, t := range r.txs {
		if t.BusinessID == businessID && !t.Date.Before(from) && !t.Date.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) Reverse(_ context.Context, _, _ string) error {
	return apperr.Internal("no implementado en el fake", nil)
}

type fakeWorkerRepo struct {
	byID map[string]*worker.Worker
}

func newFakeWorkerRepo(workers ...*worker.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{byID: make(map[string]*worker.Worker)}
	for _, w := range workers {
		r.byID[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) Create(_ context.Context, w *worker.Worker) error {
	r.byID[w.ID] = w
	return nil
}

func (r *fakeWorkerRepo) FindByID(_ context.Context, businessID, id string) (*worker.Worker, error) {
	w, ok := r.byID[id]
	if !ok || w.BusinessID != businessID {
		return nil, apperr.NotFound("trabajador no encontrado: %s", id)
	}
	return w, nil
}

func (r *fakeWorkerRepo) FindByRUT(_ context.Context, businessID, rut string) (*worker.Worker, error) {
	for _, w := range r.byID {
		if w.BusinessID == businessID && w.RUT == rut {
			return w, nil
		}
	}
	return nil, apperr.NotFound("trabajador no encontrado por rut")
}

func (r *fakeWorkerRepo) List(_ context.Context, _ string, _, _ int) ([]*worker.Worker, error) {
	var out []*worker.Worker
	for _, w := range r.byID {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWorkerRepo) Update(_ context.Context, w *worker.Worker) error {
	r.byID[w.ID] = w
	return nil
}

type fakeSettlementRepo struct {
	byID map[string]*settlement.Settlement
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{byID: make(map[string]*settlement.Settlement)}
}

func (r *fakeSettlementRepo) Create(_ context.Context, s *settlement.Settlement) error {
	for _, existing := range r.byID {
		if existing.WorkerID == s.WorkerID && existing.Month == s.Month && existing.Year == s.Year {
			return apperr.Conflict("ya existe una liquidación del período")
		}
	}
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSettlementRepo) FindByID(_ context.Context, businessID, id string) (*settlement.Settlement, error) {
	s, ok := r.byID[id]
	if !ok || s.BusinessID != businessID {
		return nil, apperr.NotFound("liquidación no encontrada: %s", id)
	}
	return s, nil
}

func (r *fakeSettlementRepo) FindByWorkerPeriod(_ context.Context, workerID string, month, year int) (*settlement.Settlement, error) {
	for _, s := range r.byID {
		if s.WorkerID == workerID && s.Month == month && s.Year == year {
			return s, nil
		}
	}
	return nil, apperr.NotFound("no existe liquidación de %02d/%d", month, year)
}

func (r *fakeSettlementRepo) ListByPeriod(_ context.Context, businessID string, month, year int) ([]*settlement.Settlement, error) {
	var out []*settlement.Settlement
	for _, s := range r.byID {
		if s.BusinessID == businessID && s.Month == month && s.Year == year {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSettlementRepo) ListByWorker(_ context.Context, workerID string, _, _ int) ([]*settlement.Settlement, error) {
	var out []*settlement.Settlement
	for _, s := range r.byID {
		if s.WorkerID == workerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSettlementRepo) MarkPaid(_ context.Context, s *settlement.Settlement) error {
	r.byID[s.ID] = s
	return nil
}

type fakeBusinessRepo struct {
	byID map[string]*business.Business
}

func newFakeBusinessRepo(bizs ...*business.Business) *fakeBusinessRepo {
	r := &fakeBusinessRepo{byID: make(map[string]*business.Business)}
	for _, b := range bizs {
		r.byID[b.ID] = b
	}
	return r
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *business.Business) error {
	for _, existing := range r.byID {
		if existing.OwnerUserID == b.OwnerUserID {
			return apperr.Conflict("el usuario ya tiene una empresa")
		}
	}
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, id string) (*business.Business, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, apperr.NotFound("empresa no encontrada: %s", id)
	}
	return b, nil
}

func (r *fakeBusinessRepo) FindByOwner(_ context.Context, ownerUserID string) (*business.Business, error) {
	for _, b := range r.byID {
		if b.OwnerUserID == ownerUserID {
			return b, nil
		}
	}
	return nil, apperr.NotFound("el usuario no tiene empresa")
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *business.Business) error {
	if _, ok := r.byID[b.ID]; !ok {
		return apperr.NotFound("empresa no encontrada: %s", b.ID)
	}
	r.byID[b.ID] = b
	return nil
}
