package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

func TestProductRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.ProductRecord{
		Name:     "Widget",
		Price:    10,
		Quantity: 5,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Widget" || got.Price != 10 || got.Quantity != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestProductRepository_CreateZeroValues(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)
	ctx := context.Background()

	// Zero price and zero quantity are valid.
	id, err := repo.Create(ctx, &secondary.ProductRecord{Name: "Freebie", Price: 0, Quantity: 0})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Price != 0 || got.Quantity != 0 {
		t.Errorf("expected zero price and quantity, got %+v", got)
	}
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)

	_, err := repo.GetByID(context.Background(), 7)
	if !fault.IsNotFound(err) {
		t.Fatalf("expected not-found fault, got %v", err)
	}
	if err.Error() != "The product with id = 7 was not found!" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestProductRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)
	ctx := context.Background()

	id := seedProduct(t, database, "Widget", 10, 5)

	err := repo.Update(ctx, &secondary.ProductRecord{
		ID:       id,
		Name:     "Widget Mk II",
		Price:    12,
		Quantity: 9,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Widget Mk II" || got.Price != 12 || got.Quantity != 9 {
		t.Errorf("update did not replace fields: %+v", got)
	}
}

func TestProductRepository_Delete_IsIdempotent(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)
	ctx := context.Background()

	id := seedProduct(t, database, "", 1, 1)

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Errorf("second Delete errored: %v", err)
	}
}

func TestProductRepository_List_Empty(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewProductRepository(database)

	recs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List on empty table failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty slice, got %d records", len(recs))
	}
}
