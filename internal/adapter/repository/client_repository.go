package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/client"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// ClientRepository implementa la interfaz client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository crea una nueva instancia de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{db: db}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (id, business_id, rut, name, phone, email, address, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.BusinessID, c.RUT, c.Name, c.Phone, c.Email, c.Address,
		c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("ya existe un cliente con RUT %s", c.RUT)
		}
		return apperr.Internal("error al crear el cliente", err)
	}
	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, businessID, id string) (*client.Client, error) {
	var c client.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, rut, name, phone, email, address, active, created_at, updated_at
		 FROM clients WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&c.ID, &c.BusinessID, &c.RUT, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("cliente no encontrado: %s", id)
		}
		return nil, apperr.Internal("error al buscar el cliente", err)
	}
	return &c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, businessID string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, rut, name, phone, email, address, active, created_at, updated_at
		 FROM clients WHERE business_id = $1 AND active = true
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar clientes", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.RUT, &c.Name, &c.Phone, &c.Email,
			&c.Address, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperr.Internal("error al leer el cliente", err)
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET name = $1, phone = $2, email = $3, address = $4,
			active = $5, updated_at = $6
		 WHERE id = $7 AND business_id = $8`,
		c.Name, c.Phone, c.Email, c.Address, c.Active, c.UpdatedAt, c.ID, c.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar el cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("cliente no encontrado: %s", c.ID)
	}
	return nil
}
