package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/db"
	"github.com/example/stockroom/internal/wire"
)

// lowStockThreshold marks products worth restocking in the status view.
const lowStockThreshold = 5

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the stockroom",
		Long: `Display counts of clients, products and orders, the database
location, and any products running low on stock.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			clients, err := wire.ClientService().ListClients(ctx)
			if err != nil {
				return err
			}
			products, err := wire.ProductService().ListProducts(ctx)
			if err != nil {
				return err
			}
			orders, err := wire.OrderService().ListOrders(ctx)
			if err != nil {
				return err
			}

			dbPath, err := db.GetDBPath()
			if err != nil {
				return err
			}

			fmt.Println("Stockroom Status")
			fmt.Println()
			fmt.Printf("  Database: %s\n", dbPath)
			fmt.Printf("  Clients:  %d\n", len(clients))
			fmt.Printf("  Products: %d\n", len(products))
			fmt.Printf("  Orders:   %d\n", len(orders))
			fmt.Println()

			lowMark := color.New(color.FgYellow, color.Bold)
			outMark := color.New(color.FgRed, color.Bold)
			low := 0
			for _, p := range products {
				switch {
				case p.Quantity == 0:
					outMark.Printf("  ✗ %s is out of stock\n", p.Name)
					low++
				case p.Quantity <= lowStockThreshold:
					lowMark.Printf("  ⚠ %s has only %d left\n", p.Name, p.Quantity)
					low++
				}
			}
			if low == 0 && len(products) > 0 {
				color.New(color.FgGreen).Println("  ✓ All products well stocked")
			}

			return nil
		},
	}
}
