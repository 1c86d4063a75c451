package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/stockroom/internal/adapters/sqlite"
	"github.com/example/stockroom/internal/fault"
	"github.com/example/stockroom/internal/ports/secondary"
)

func TestOrderRepository_Place_DecrementsStock(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "", "", "")
	productID := seedProduct(t, database, "Widget", 10, 5)

	id, err := repo.Place(ctx, &secondary.OrderRecord{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ClientID != clientID || got.ProductID != productID || got.Quantity != 3 {
		t.Errorf("order row mismatch: %+v", got)
	}

	var stock int64
	if err := database.QueryRow("SELECT quantity FROM products WHERE id = ?", productID).Scan(&stock); err != nil {
		t.Fatalf("failed to read stock: %v", err)
	}
	if stock != 2 {
		t.Errorf("stock = %d, want 2", stock)
	}
}

func TestOrderRepository_Place_InsufficientStockLeavesNothingBehind(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "", "", "")
	productID := seedProduct(t, database, "Widget", 10, 2)

	_, err := repo.Place(ctx, &secondary.OrderRecord{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  3,
	})
	if err == nil {
		t.Fatal("expected error for under-stocked order")
	}
	if !fault.IsValidation(err) {
		t.Errorf("expected validation fault, got kind %v", fault.KindOf(err))
	}
	if err.Error() != "Under-stocked item! Only 2 left." {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if n := countRows(t, database, "orders"); n != 0 {
		t.Errorf("expected no order rows, found %d", n)
	}
	var stock int64
	if err := database.QueryRow("SELECT quantity FROM products WHERE id = ?", productID).Scan(&stock); err != nil {
		t.Fatalf("failed to read stock: %v", err)
	}
	if stock != 2 {
		t.Errorf("stock = %d, want unchanged 2", stock)
	}
}

func TestOrderRepository_Place_SequentialOrdersDrainStock(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "", "", "")
	productID := seedProduct(t, database, "Widget", 10, 5)

	if _, err := repo.Place(ctx, &secondary.OrderRecord{ClientID: clientID, ProductID: productID, Quantity: 3}); err != nil {
		t.Fatalf("first Place failed: %v", err)
	}

	// Only 2 left now; a second order of 3 must fail with the remainder.
	_, err := repo.Place(ctx, &secondary.OrderRecord{ClientID: clientID, ProductID: productID, Quantity: 3})
	if err == nil || err.Error() != "Under-stocked item! Only 2 left." {
		t.Fatalf("expected under-stock error with remainder 2, got %v", err)
	}

	if _, err := repo.Place(ctx, &secondary.OrderRecord{ClientID: clientID, ProductID: productID, Quantity: 2}); err != nil {
		t.Fatalf("draining Place failed: %v", err)
	}

	var stock int64
	if err := database.QueryRow("SELECT quantity FROM products WHERE id = ?", productID).Scan(&stock); err != nil {
		t.Fatalf("failed to read stock: %v", err)
	}
	if stock != 0 {
		t.Errorf("stock = %d, want 0", stock)
	}
	if n := countRows(t, database, "orders"); n != 2 {
		t.Errorf("expected 2 order rows, found %d", n)
	}
}

func TestOrderRepository_Place_MissingProduct(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)

	clientID := seedClient(t, database, "", "", "")

	_, err := repo.Place(context.Background(), &secondary.OrderRecord{
		ClientID:  clientID,
		ProductID: 99,
		Quantity:  1,
	})
	if !fault.IsNotFound(err) {
		t.Errorf("expected not-found fault, got %v", err)
	}
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)

	_, err := repo.GetByID(context.Background(), 1)
	if !fault.IsNotFound(err) {
		t.Errorf("expected not-found fault, got %v", err)
	}
}

func TestOrderRepository_List_Empty(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewOrderRepository(database)

	recs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List on empty table failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty slice, got %d records", len(recs))
	}
}
