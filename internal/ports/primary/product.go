package primary

import "context"

// ProductService defines the primary port for product operations.
type ProductService interface {
	// CreateProduct validates the given fields and persists a new product.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	// GetProduct retrieves a product by its id, given in text form.
	GetProduct(ctx context.Context, idText string) (*Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]*Product, error)

	// UpdateProduct replaces all value fields of an existing product.
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (*Product, error)

	// DeleteProduct removes a product by id. Deleting a missing id is not
	// an error.
	DeleteProduct(ctx context.Context, id int64) error
}

// CreateProductRequest contains the user-supplied fields for a new product.
// Price and Quantity arrive as entered, in text form.
type CreateProductRequest struct {
	Name     string
	Price    string
	Quantity string
}

// UpdateProductRequest contains the id (as entered) and replacement fields.
type UpdateProductRequest struct {
	ID       string
	Name     string
	Price    string
	Quantity string
}

// Product represents a product entity at the port boundary.
// Quantity is the available stock.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	Quantity  int64
	CreatedAt string
	UpdatedAt string
}
