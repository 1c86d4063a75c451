// Package primary defines the primary ports (driving interfaces) of the
// application: the operations the presentation layer invokes, expressed in
// primitive field values and boundary DTOs.
package primary

import "context"

// ClientService defines the primary port for client operations.
type ClientService interface {
	// CreateClient validates the given fields and persists a new client.
	CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error)

	// GetClient retrieves a client by its id, given in text form.
	GetClient(ctx context.Context, idText string) (*Client, error)

	// ListClients retrieves all clients.
	ListClients(ctx context.Context) ([]*Client, error)

	// UpdateClient replaces all value fields of an existing client.
	UpdateClient(ctx context.Context, req UpdateClientRequest) (*Client, error)

	// DeleteClient removes a client by id. Deleting a missing id is not
	// an error.
	DeleteClient(ctx context.Context, id int64) error
}

// CreateClientRequest contains the user-supplied fields for a new client.
type CreateClientRequest struct {
	Name    string
	Address string
	Email   string
}

// UpdateClientRequest contains the id (as entered) and replacement fields.
type UpdateClientRequest struct {
	ID      string
	Name    string
	Address string
	Email   string
}

// Client represents a client entity at the port boundary.
type Client struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	CreatedAt string
	UpdatedAt string
}
