package sii

import (
	"context"
	"time"

	"github.com/google/uuid"
	pkcs12 "software.sslmate.com/src/go-pkcs12"

	"github.com/contapyme/contapyme/pkg/apperr"
)

// Paquete sii contiene el esqueleto de la integración con el Servicio de
// Impuestos Internos. Solo la carga del certificado digital está
// implementada; la emisión de DTE es un placeholder.

// Certificate es el certificado digital PKCS#12 de la empresa para firmar
// documentos tributarios electrónicos
type Certificate struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Subject    string    `json:"subject"`
	NotBefore  time.Time `json:"not_before"`
	NotAfter   time.Time `json:"not_after"`
	PFXData    []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCertificate valida y registra un archivo PKCS#12. La contraseña se usa
// solo para verificar que el archivo abre; se almacena el binario original.
func NewCertificate(businessID, name string, pfxData []byte, password string) (*Certificate, error) {
	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if len(pfxData) == 0 {
		return nil, apperr.Validation("el archivo de certificado es obligatorio")
	}

	_, cert, _, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, apperr.Validation("certificado o contraseña inválidos")
	}

	now := time.Now()
	if now.After(cert.NotAfter) {
		return nil, apperr.Validation("el certificado está vencido desde %s", cert.NotAfter.Format("2006-01-02"))
	}

	return &Certificate{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Subject:    cert.Subject.String(),
		NotBefore:  cert.NotBefore,
		NotAfter:   cert.NotAfter,
		PFXData:    pfxData,
		CreatedAt:  now,
	}, nil
}

// CertificateRepository define la persistencia del certificado digital
type CertificateRepository interface {
	// Save registra o reemplaza el certificado de la empresa
	Save(ctx context.Context, c *Certificate) error

	// FindByBusiness busca el certificado vigente de la empresa
	FindByBusiness(ctx context.Context, businessID string) (*Certificate, error)
}
