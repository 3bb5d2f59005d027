package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/sii"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// CertificateRepository implementa la interfaz sii.CertificateRepository.
// Cada empresa conserva a lo más un certificado vigente: guardar uno nuevo
// reemplaza al anterior.
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository crea una nueva instancia de CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) sii.CertificateRepository {
	return &CertificateRepository{db: db}
}

// Save implementa sii.CertificateRepository.Save
func (r *CertificateRepository) Save(ctx context.Context, c *sii.Certificate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sii_certificates (id, business_id, name, subject, not_before, not_after, pfx_data, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (business_id) DO UPDATE SET
			id = EXCLUDED.id, name = EXCLUDED.name, subject = EXCLUDED.subject,
			not_before = EXCLUDED.not_before, not_after = EXCLUDED.not_after,
			pfx_data = EXCLUDED.pfx_data, created_at = EXCLUDED.created_at`,
		c.ID, c.BusinessID, c.Name, c.Subject, c.NotBefore, c.NotAfter, c.PFXData, c.CreatedAt)
	if err != nil {
		return apperr.Internal("error al guardar el certificado", err)
	}
	return nil
}

// FindByBusiness implementa sii.CertificateRepository.FindByBusiness
func (r *CertificateRepository) FindByBusiness(ctx context.Context, businessID string) (*sii.Certificate, error) {
	var c sii.Certificate
	err := r.db.QueryRow(ctx,
		`SELECT id, business_id, name, subject, not_before, not_after, pfx_data, created_at
		 FROM sii_certificates WHERE business_id = $1`,
		businessID).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Subject, &c.NotBefore, &c.NotAfter, &c.PFXData, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("la empresa no tiene certificado registrado")
		}
		return nil, apperr.Internal("error al buscar el certificado", err)
	}
	return &c, nil
}
