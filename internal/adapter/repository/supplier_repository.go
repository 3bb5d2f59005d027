package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/supplier"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// SupplierRepository implementa la interfaz supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository crea una nueva instancia de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{db: db}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (id, business_id, rut, name, contact, phone, email, address, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.BusinessID, s.RUT, s.Name, s.Contact, s.Phone, s.Email, s.Address,
		s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("ya existe un proveedor con RUT %s", s.RUT)
		}
		return apperr.Internal("error al crear el proveedor", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, businessID, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, rut, name, contact, phone, email, address, active, created_at, updated_at
		 FROM suppliers WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&s.ID, &s.BusinessID, &s.RUT, &s.Name, &s.Contact, &s.Phone, &s.Email,
		&s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("proveedor no encontrado: %s", id)
		}
		return nil, apperr.Internal("error al buscar el proveedor", err)
	}
	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, rut, name, contact, phone, email, address, active, created_at, updated_at
		 FROM suppliers WHERE business_id = $1 AND active = true
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar proveedores", err)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.RUT, &s.Name, &s.Contact, &s.Phone,
			&s.Email, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, apperr.Internal("error al leer el proveedor", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE suppliers SET name = $1, contact = $2, phone = $3, email = $4,
			address = $5, active = $6, updated_at = $7
		 WHERE id = $8 AND business_id = $9`,
		s.Name, s.Contact, s.Phone, s.Email, s.Address, s.Active, s.UpdatedAt,
		s.ID, s.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el proveedor", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("proveedor no encontrado: %s", s.ID)
	}
	return nil
}
