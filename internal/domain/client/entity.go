package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/rut"
)

// Client es un cliente de la empresa. Igual que proveedores y trabajadores,
// se desactiva y nunca se elimina físicamente.
type Client struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	RUT        string    `json:"rut"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// New crea un cliente validando su RUT
func New(businessID, rawRUT, name string) (*Client, error) {
	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if name == "" {
		return nil, apperr.Validation("el nombre del cliente es obligatorio")
	}

	normalized, err := rut.Normalize(rawRUT)
	if err != nil {
		return nil, apperr.Validation("rut inválido: %s", rawRUT)
	}

	now := time.Now()
	return &Client{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		RUT:        normalized,
		Name:       name,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update modifica los datos de contacto del cliente
func (c *Client) Update(name, phone, email, address string) error {
	if name == "" {
		return apperr.Validation("el nombre del cliente es obligatorio")
	}
	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate retira el cliente, de una sola vía
func (c *Client) Deactivate() error {
	if !c.Active {
		return apperr.Conflict("el cliente ya está inactivo")
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	return nil
}
