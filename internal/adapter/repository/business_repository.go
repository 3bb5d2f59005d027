package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/business"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// BusinessRepository implementa la interfaz business.Repository
type BusinessRepository struct {
	db *pgxpool.Pool
}

// NewBusinessRepository crea una nueva instancia de BusinessRepository
func NewBusinessRepository(db *pgxpool.Pool) business.Repository {
	return &BusinessRepository{db: db}
}

// Create implementa business.Repository.Create
func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO businesses (id, owner_user_id, rut, razon_social, giro, address, comuna, phone, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.OwnerUserID, b.RUT, b.RazonSocial, b.Giro, b.Address, b.Comuna,
		b.Phone, b.Email, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("el usuario ya tiene una empresa o el RUT ya está registrado")
		}
		return apperr.Internal("error al crear la empresa", err)
	}
	return nil
}

// FindByID implementa business.Repository.FindByID
func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*business.Business, error) {
	return r.findOne(ctx, `id = $1`, id)
}

// FindByOwner implementa business.Repository.FindByOwner
func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerUserID string) (*business.Business, error) {
	return r.findOne(ctx, `owner_user_id = $1`, ownerUserID)
}

// Update implementa business.Repository.Update
func (r *BusinessRepository) Update(ctx context.Context, b *business.Business) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE businesses SET razon_social = $1, giro = $2, address = $3, comuna = $4,
			phone = $5, email = $6, updated_at = $7
		 WHERE id = $8`,
		b.RazonSocial, b.Giro, b.Address, b.Comuna, b.Phone, b.Email, b.UpdatedAt, b.ID)
	if err != nil {
		return apperr.Internal("error al actualizar la empresa", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("empresa no encontrada: %s", b.ID)
	}
	return nil
}

func (r *BusinessRepository) findOne(ctx context.Context, where string, args ...any) (*business.Business, error) {
	var b business.Business
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_user_id, rut, razon_social, giro, address, comuna, phone, email, created_at, updated_at
		 FROM businesses WHERE `+where, args...).Scan(
		&b.ID, &b.OwnerUserID, &b.RUT, &b.RazonSocial, &b.Giro, &b.Address, &b.Comuna,
		&b.Phone, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("empresa no encontrada")
		}
		return nil, apperr.Internal("error al buscar la empresa", err)
	}
	return &b, nil
}
