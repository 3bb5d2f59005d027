package client

import "context"

// Repository define las operaciones de persistencia de clientes
type Repository interface {
	// Create registra un nuevo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca un cliente de la empresa por su ID
	FindByID(ctx context.Context, businessID, id string) (*Client, error)

	// List lista los clientes activos de la empresa con paginación
	List(ctx context.Context, businessID string, limit, offset int) ([]*Client, error)

	// Update actualiza los datos de un cliente existente
	Update(ctx context.Context, c *Client) error
}
