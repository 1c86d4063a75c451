package secondary

import (
	"context"
	"time"
)

// ReceiptWriter defines the secondary port for receipt emission.
type ReceiptWriter interface {
	// Write appends a receipt for one placed order and returns the path
	// of the written artifact.
	Write(ctx context.Context, data ReceiptData) (string, error)
}

// ReceiptData carries everything a receipt displays.
type ReceiptData struct {
	ClientName  string
	Address     string
	Email       string
	ProductName string
	Quantity    int64
	UnitPrice   int64
	Total       int64
	PlacedAt    time.Time
}
