package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

// OrderRepository implements secondary.OrderRepository with SQLite.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new SQLite order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Place atomically inserts the order and decrements the product's stock.
// The decrement is conditional on sufficient stock, so two concurrent
// placements cannot oversell: the loser sees zero rows affected and the
// whole transaction rolls back.
func (r *OrderRepository) Place(ctx context.Context, rec *secondary.OrderRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Warn("failed to begin order transaction")
		return 0, fault.Storage(err, "failed to place order")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND quantity >= ?`,
		rec.Quantity, rec.ProductID, rec.Quantity,
	)
	if err != nil {
		log.WithError(err).Warn("failed to decrement stock")
		return 0, fault.Storage(err, "failed to place order")
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		var remaining int64
		err := tx.QueryRowContext(ctx, `SELECT quantity FROM products WHERE id = ?`, rec.ProductID).Scan(&remaining)
		if err == sql.ErrNoRows {
			return 0, fault.NotFoundf("The product with id = %d was not found!", rec.ProductID)
		}
		if err != nil {
			return 0, fault.Storage(err, "failed to place order")
		}
		return 0, fault.Validationf("Under-stocked item! Only %d left.", remaining)
	}

	insert, err := tx.ExecContext(ctx,
		`INSERT INTO orders (client_id, product_id, quantity) VALUES (?, ?, ?)`,
		rec.ClientID, rec.ProductID, rec.Quantity,
	)
	if err != nil {
		log.WithError(err).Warn("failed to insert order")
		return 0, fault.Storage(err, "failed to place order")
	}
	id, err := insert.LastInsertId()
	if err != nil {
		return 0, fault.Storage(err, "failed to read created order id")
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Warn("failed to commit order")
		return 0, fault.Storage(err, "failed to place order")
	}

	return id, nil
}

// GetByID retrieves an order by its id.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*secondary.OrderRecord, error) {
	var createdAt time.Time

	record := &secondary.OrderRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, client_id, product_id, quantity, created_at FROM orders WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.ClientID, &record.ProductID, &record.Quantity, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fault.NotFoundf("The order with id = %d was not found!", id)
	}
	if err != nil {
		log.WithError(err).Warn("failed to get order")
		return nil, fault.Storage(err, "failed to get order")
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all orders. An empty table yields an empty slice.
func (r *OrderRepository) List(ctx context.Context) ([]*secondary.OrderRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, product_id, quantity, created_at FROM orders ORDER BY id`,
	)
	if err != nil {
		log.WithError(err).Warn("failed to list orders")
		return nil, fault.Storage(err, "failed to list orders")
	}
	defer rows.Close()

	recs := []*secondary.OrderRecord{}
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.OrderRecord{}
		if err := rows.Scan(&record.ID, &record.ClientID, &record.ProductID, &record.Quantity, &createdAt); err != nil {
			return nil, fault.Storage(err, "failed to scan order")
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)

		recs = append(recs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Storage(err, "failed to list orders")
	}

	return recs, nil
}

// Ensure OrderRepository implements the interface
var _ secondary.OrderRepository = (*OrderRepository)(nil)
