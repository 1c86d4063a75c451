// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import "context"

// ClientRepository defines the secondary port for client persistence.
type ClientRepository interface {
	// Create persists a new client and returns the storage-assigned id.
	Create(ctx context.Context, client *ClientRecord) (int64, error)

	// GetByID retrieves a client by its id.
	GetByID(ctx context.Context, id int64) (*ClientRecord, error)

	// List retrieves all clients. An empty table yields an empty slice,
	// not an error.
	List(ctx context.Context) ([]*ClientRecord, error)

	// Update replaces all value fields of an existing client.
	Update(ctx context.Context, client *ClientRecord) error

	// Delete removes a client. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// ClientRecord represents a client as stored in persistence.
type ClientRecord struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	CreatedAt string
	UpdatedAt string
}

// ProductRepository defines the secondary port for product persistence.
type ProductRepository interface {
	// Create persists a new product and returns the storage-assigned id.
	Create(ctx context.Context, product *ProductRecord) (int64, error)

	// GetByID retrieves a product by its id.
	GetByID(ctx context.Context, id int64) (*ProductRecord, error)

	// List retrieves all products. An empty table yields an empty slice,
	// not an error.
	List(ctx context.Context) ([]*ProductRecord, error)

	// Update replaces all value fields of an existing product.
	Update(ctx context.Context, product *ProductRecord) error

	// Delete removes a product. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// ProductRecord represents a product as stored in persistence.
// Quantity is the available stock.
type ProductRecord struct {
	ID        int64
	Name      string
	Price     int64
	Quantity  int64
	CreatedAt string
	UpdatedAt string
}

// OrderRepository defines the secondary port for order persistence.
// There is deliberately no Update: orders are immutable once placed.
type OrderRepository interface {
	// Place atomically inserts the order and decrements the product's
	// stock by the ordered quantity. The decrement is conditional on
	// sufficient stock; on shortfall nothing is written and a validation
	// fault reporting the remaining stock is returned.
	Place(ctx context.Context, order *OrderRecord) (int64, error)

	// GetByID retrieves an order by its id.
	GetByID(ctx context.Context, id int64) (*OrderRecord, error)

	// List retrieves all orders. An empty table yields an empty slice,
	// not an error.
	List(ctx context.Context) ([]*OrderRecord, error)
}

// OrderRecord represents an order as stored in persistence.
type OrderRecord struct {
	ID        int64
	ClientID  int64
	ProductID int64
	Quantity  int64
	CreatedAt string
}
