package business

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/rut"
)

// Business es la empresa de un usuario. Cada usuario es dueño de
// exactamente una empresa y todo acceso a datos queda acotado a ella.
type Business struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	RUT         string    `json:"rut"`
	RazonSocial string    `json:"razon_social"`
	Giro        string    `json:"giro,omitempty"`
	Address     string    `json:"address,omitempty"`
	Comuna      string    `json:"comuna,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New crea una empresa validando su RUT
func New(ownerUserID, rawRUT, razonSocial, giro string) (*Business, error) {
	if ownerUserID == "" {
		return nil, apperr.Validation("el usuario dueño es obligatorio")
	}
	if razonSocial == "" {
		return nil, apperr.Validation("la razón social es obligatoria")
	}

	normalized, err := rut.Normalize(rawRUT)
	if err != nil {
		return nil, apperr.Validation("rut inválido: %s", rawRUT)
	}

	now := time.Now()
	return &Business{
		ID:          uuid.New().String(),
		OwnerUserID: ownerUserID,
		RUT:         normalized,
		RazonSocial: razonSocial,
		Giro:        giro,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update modifica los datos de contacto y giro de la empresa
func (b *Business) Update(razonSocial, giro, address, comuna, phone, email string) error {
	if razonSocial == "" {
		return apperr.Validation("la razón social es obligatoria")
	}
	b.RazonSocial = razonSocial
	b.Giro = giro
	b.Address = address
	b.Comuna = comuna
	b.Phone = phone
	b.Email = email
	b.UpdatedAt = time.Now()
	return nil
}
