package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

// ProductRepository implements secondary.ProductRepository with SQLite.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite product repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product and returns the storage-assigned id.
func (r *ProductRepository) Create(ctx context.Context, rec *secondary.ProductRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)`,
		rec.Name, rec.Price, rec.Quantity,
	)
	if err != nil {
		log.WithError(err).Warn("failed to create product")
		return 0, fault.Storage(err, "failed to create product")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fault.Storage(err, "failed to read created product id")
	}
	return id, nil
}

// GetByID retrieves a product by its id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*secondary.ProductRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ProductRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, price, quantity, created_at, updated_at FROM products WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.Name, &record.Price, &record.Quantity, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fault.NotFoundf("The product with id = %d was not found!", id)
	}
	if err != nil {
		log.WithError(err).Warn("failed to get product")
		return nil, fault.Storage(err, "failed to get product")
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all products. An empty table yields an empty slice.
func (r *ProductRepository) List(ctx context.Context) ([]*secondary.ProductRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, quantity, created_at, updated_at FROM products ORDER BY id`,
	)
	if err != nil {
		log.WithError(err).Warn("failed to list products")
		return nil, fault.Storage(err, "failed to list products")
	}
	defer rows.Close()

	recs := []*secondary.ProductRecord{}
	for rows.Next() {
		var (
			createdAt time.Time
			updatedAt time.Time
		)

		record := &secondary.ProductRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Price, &record.Quantity, &createdAt, &updatedAt); err != nil {
			return nil, fault.Storage(err, "failed to scan product")
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		recs = append(recs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Storage(err, "failed to list products")
	}

	return recs, nil
}

// Update replaces all value fields of an existing product.
func (r *ProductRepository) Update(ctx context.Context, rec *secondary.ProductRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, price = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		rec.Name, rec.Price, rec.Quantity, rec.ID,
	)
	if err != nil {
		log.WithError(err).Warn("failed to update product")
		return fault.Storage(err, "failed to update product")
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fault.NotFoundf("The product with id = %d was not found!", rec.ID)
	}

	return nil
}

// Delete removes a product. Deleting a missing id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		log.WithError(err).Warn("failed to delete product")
		return fault.Storage(err, "failed to delete product")
	}
	return nil
}

// Ensure ProductRepository implements the interface
var _ secondary.ProductRepository = (*ProductRepository)(nil)
