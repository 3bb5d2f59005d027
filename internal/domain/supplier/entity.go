package supplier

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/rut"
)

// Supplier es un proveedor de la empresa. Se desactiva en vez de eliminarse
// una vez referenciado por compras.
type Supplier struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	RUT        string    `json:"rut"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New crea un proveedor validando su RUT
func New(businessID, rawRUT, name string) (*Supplier, error) {
	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if name == "" {
		return nil, apperr.Validation("el nombre del proveedor es obligatorio")
	}

	normalized, err := rut.Normalize(rawRUT)
	if err != nil {
		return nil, apperr.Validation("rut inválido: %s", rawRUT)
	}

	now := time.Now()
	return &Supplier{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		RUT:        normalized,
		Name:       name,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update modifica los datos de contacto del proveedor
func (s *Supplier) Update(name, contact, phone, email, address string) error {
	if name == "" {
		return apperr.Validation("el nombre del proveedor es obligatorio")
	}
	s.Name = name
	s.Contact = contact
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate retira el proveedor, de una sola vía
func (s *Supplier) Deactivate() error {
	if !s.Active {
		return apperr.Conflict("el proveedor ya está inactivo")
	}
	s.Active = false
	s.UpdatedAt = time.Now()
	return nil
}
