package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/worker"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// WorkerRepository implementa la interfaz worker.Repository
type WorkerRepository struct {
	db *pgxpool.Pool
}

// NewWorkerRepository crea una nueva instancia de WorkerRepository
func NewWorkerRepository(db *pgxpool.Pool) worker.Repository {
	return &WorkerRepository{db: db}
}

// Create implementa worker.Repository.Create
func (r *WorkerRepository) Create(ctx context.Context, w *worker.Worker) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO workers (
			id, business_id, rut, first_name, paternal_surname, maternal_surname,
			base_salary, afp_name, health_system, health_institution,
			start_date, end_date, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		w.ID, w.BusinessID, w.RUT, w.FirstName, w.PaternalSurname, w.MaternalSurname,
		w.BaseSalary, w.AFPName, w.HealthSystem, w.HealthInstitution,
		w.StartDate, w.EndDate, w.Active, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("ya existe un trabajador con RUT %s", w.RUT)
		}
		return apperr.Internal("error al crear el trabajador", err)
	}
	return nil
}

// FindByID implementa worker.Repository.FindByID
func (r *WorkerRepository) FindByID(ctx context.Context, businessID, id string) (*worker.Worker, error) {
	return r.findOne(ctx, `id = $1 AND business_id = $2`, id, businessID)
}

// FindByRUT implementa worker.Repository.FindByRUT
func (r *WorkerRepository) FindByRUT(ctx context.Context, businessID, rut string) (*worker.Worker, error) {
	return r.findOne(ctx, `rut = $1 AND business_id = $2`, rut, businessID)
}

// List implementa worker.Repository.List
func (r *WorkerRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*worker.Worker, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, rut, first_name, paternal_surname, maternal_surname,
			base_salary, afp_name, health_system, health_institution,
			start_date, end_date, active, created_at, updated_at
		 FROM workers WHERE business_id = $1 AND active = true
		 ORDER BY paternal_surname, first_name
		 LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar trabajadores", err)
	}
	defer rows.Close()

	var workers []*worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.BusinessID, &w.RUT, &w.FirstName, &w.PaternalSurname,
			&w.MaternalSurname, &w.BaseSalary, &w.AFPName, &w.HealthSystem, &w.HealthInstitution,
			&w.StartDate, &w.EndDate, &w.Active, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, apperr.Internal("error al leer el trabajador", err)
		}
		workers = append(workers, &w)
	}
	return workers, rows.Err()
}

// Update implementa worker.Repository.Update
func (r *WorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE workers SET
			first_name = $1, paternal_surname = $2, maternal_surname = $3,
			base_salary = $4, afp_name = $5, health_system = $6, health_institution = $7,
			end_date = $8, active = $9, updated_at = $10
		 WHERE id = $11 AND business_id = $12`,
		w.FirstName, w.PaternalSurname, w.MaternalSurname,
		w.BaseSalary, w.AFPName, w.HealthSystem, w.HealthInstitution,
		w.EndDate, w.Active, w.UpdatedAt, w.ID, w.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el trabajador", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("trabajador no encontrado: %s", w.ID)
	}
	return nil
}

func (r *WorkerRepository) findOne(ctx context.Context, where string, args ...any) (*worker.Worker, error) {
	var w worker.Worker
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, rut, first_name, paternal_surname, maternal_surname,
			base_salary, afp_name, health_system, health_institution,
			start_date, end_date, active, created_at, updated_at
		 FROM workers WHERE `+where, args...).Scan(
		&w.ID, &w.BusinessID, &w.RUT, &w.FirstName, &w.PaternalSurname,
		&w.MaternalSurname, &w.BaseSalary, &w.AFPName, &w.HealthSystem, &w.HealthInstitution,
		&w.StartDate, &w.EndDate, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("trabajador no encontrado")
		}
		return nil, apperr.Internal("error al buscar el trabajador", err)
	}
	return &w, nil
}
