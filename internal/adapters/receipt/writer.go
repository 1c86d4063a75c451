// Package receipt contains the filesystem adapter for receipt emission.
package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/stockroom/internal/ports/secondary"
)

// FileWriter implements secondary.ReceiptWriter by appending plain-text
// receipts under a configured directory. The file name combines the
// placement timestamp with the client's display name, so receipts for the
// same client within one minute append to the same file.
type FileWriter struct {
	dir string
}

// NewFileWriter creates a receipt writer rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Write appends the receipt and returns the path of the written file.
func (w *FileWriter) Write(ctx context.Context, data secondary.ReceiptData) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create receipts directory: %w", err)
	}

	name := data.PlacedAt.Format("2006-01-02_15-04") + "_" + data.ClientName + ".txt"
	path := filepath.Join(w.dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open receipt file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "Client name: %s\n", data.ClientName)
	fmt.Fprintf(&b, "Address: %s\n", data.Address)
	fmt.Fprintf(&b, "Email: %s\n\n", data.Email)
	fmt.Fprintf(&b, "Product: %s\n", data.ProductName)
	fmt.Fprintf(&b, "Quantity: %d\n", data.Quantity)
	fmt.Fprintf(&b, "Price per unit: %d\n\n", data.UnitPrice)
	fmt.Fprintf(&b, "Total cost: %d\n", data.Total)

	if _, err := f.WriteString(b.String()); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path, nil
}

// Ensure FileWriter implements the interface
var _ secondary.ReceiptWriter = (*FileWriter)(nil)
