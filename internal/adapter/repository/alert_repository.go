package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/alert"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// AlertRepository implementa la interfaz alert.Repository
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository crea una nueva instancia de AlertRepository
func NewAlertRepository(db *pgxpool.Pool) alert.Repository {
	return &AlertRepository{db: db}
}

// Create implementa alert.Repository.Create
func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return apperr.Internal("error al serializar los metadatos", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO alerts (id, business_id, kind, title, message, priority, metadata, read, resolved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.BusinessID, a.Kind, a.Title, a.Message, a.Priority, metadata,
		a.Read, a.Resolved, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return apperr.Internal("error al crear la alerta", err)
	}
	return nil
}

// FindByID implementa alert.Repository.FindByID
func (r *AlertRepository) FindByID(ctx context.Context, businessID, id string) (*alert.Alert, error) {
	var a alert.Alert
	var metadata []byte

	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, kind, title, message, priority, metadata, read, resolved, created_at, updated_at
		 FROM alerts WHERE id = $1 AND business_id = $2`,
		id, businessID).Scan(
		&a.ID, &a.BusinessID, &a.Kind, &a.Title, &a.Message, &a.Priority, &metadata,
		&a.Read, &a.Resolved, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("alerta no encontrada: %s", id)
		}
		return nil, apperr.Internal("error al buscar la alerta", err)
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, apperr.Internal("error al leer los metadatos", err)
		}
	}
	return &a, nil
}

// List implementa alert.Repository.List
func (r *AlertRepository) List(ctx context.Context, businessID string, onlyUnread bool, limit, offset int) ([]*alert.Alert, error) {
	query := `SELECT id, business_id, kind, title, message, priority, metadata, read, resolved, created_at, updated_at
		 FROM alerts WHERE business_id = $1`
	if onlyUnread {
		query += ` AND read = false`
	}
	query += ` ORDER BY resolved, created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, apperr.Internal("error al listar alertas", err)
	}
	defer rows.Close()

	var alerts []*alert.Alert
	for rows.Next() {
		var a alert.Alert
		var metadata []byte
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.Kind, &a.Title, &a.Message, &a.Priority,
			&metadata, &a.Read, &a.Resolved, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, apperr.Internal("error al leer la alerta", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
				return nil, apperr.Internal("error al leer los metadatos", err)
			}
		}
		alerts = append(alerts, &a)
	}
	return alerts, rows.Err()
}

// Update implementa alert.Repository.Update
func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE alerts SET read = $1, resolved = $2, updated_at = $3 WHERE id = $4 AND business_id = $5`,
		a.Read, a.Resolved, a.UpdatedAt, a.ID, a.BusinessID)
	if err != nil {
		return apperr.Internal("error al actualizar la alerta", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("alerta no encontrada: %s", a.ID)
	}
	return nil
}

// insertAlertInTx inserta una alerta dentro de una transacción en curso.
// Lo usa el procesador de transacciones para las alertas de stock bajo.
func insertAlertInTx(ctx context.Context, tx pgx.Tx, a *alert.Alert) error {
	metadata, err := json.Marshal(a.Metadata)
	if err != nil {
		return apperr.Internal("error al serializar los metadatos", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO alerts (id, business_id, kind, title, message, priority, metadata, read, resolved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.BusinessID, a.Kind, a.Title, a.Message, a.Priority, metadata,
		a.Read, a.Resolved, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return apperr.Internal("error al crear la alerta de stock", err)
	}
	return nil
}
