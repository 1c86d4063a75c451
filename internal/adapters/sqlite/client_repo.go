// Package sqlite contains SQLite implementations of the repository
// interfaces. Statements are explicit and per-entity; column lists are
// spelled out rather than derived, so reordering a struct field can never
// corrupt a row.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

var log = logrus.WithField("component", "sqlite")

// ClientRepository implements secondary.ClientRepository with SQLite.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new SQLite client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create persists a new client and returns the storage-assigned id.
func (r *ClientRepository) Create(ctx context.Context, rec *secondary.ClientRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, address, email) VALUES (?, ?, ?)`,
		rec.Name, rec.Address, rec.Email,
	)
	if err != nil {
		log.WithError(err).Warn("failed to create client")
		return 0, fault.Storage(err, "failed to create client")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fault.Storage(err, "failed to read created client id")
	}
	return id, nil
}

// GetByID retrieves a client by its id.
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*secondary.ClientRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ClientRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, email, created_at, updated_at FROM clients WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.Name, &record.Address, &record.Email, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fault.NotFoundf("The client with id = %d was not found!", id)
	}
	if err != nil {
		log.WithError(err).Warn("failed to get client")
		return nil, fault.Storage(err, "failed to get client")
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all clients. An empty table yields an empty slice.
func (r *ClientRepository) List(ctx context.Context) ([]*secondary.ClientRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, address, email, created_at, updated_at FROM clients ORDER BY id`,
	)
	if err != nil {
		log.WithError(err).Warn("failed to list clients")
		return nil, fault.Storage(err, "failed to list clients")
	}
	defer rows.Close()

	recs := []*secondary.ClientRecord{}
	for rows.Next() {
		var (
			createdAt time.Time
			updatedAt time.Time
		)

		record := &secondary.ClientRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Address, &record.Email, &createdAt, &updatedAt); err != nil {
			return nil, fault.Storage(err, "failed to scan client")
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		recs = append(recs, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Storage(err, "failed to list clients")
	}

	return recs, nil
}

// Update replaces all value fields of an existing client.
func (r *ClientRepository) Update(ctx context.Context, rec *secondary.ClientRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = ?, address = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		rec.Name, rec.Address, rec.Email, rec.ID,
	)
	if err != nil {
		log.WithError(err).Warn("failed to update client")
		return fault.Storage(err, "failed to update client")
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fault.NotFoundf("The client with id = %d was not found!", rec.ID)
	}

	return nil
}

// Delete removes a client. Deleting a missing id is not an error.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		log.WithError(err).Warn("failed to delete client")
		return fault.Storage(err, "failed to delete client")
	}
	return nil
}

// Ensure ClientRepository implements the interface
var _ secondary.ClientRepository = (*ClientRepository)(nil)
