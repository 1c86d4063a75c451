package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/wire"
)

// OrderCmd returns the order command
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and inspect orders",
		Long: `Place orders against stocked products. Placing an order checks
stock, decrements it atomically with the order insert, and writes a text
receipt. Orders are immutable once placed.`,
	}

	cmd.AddCommand(orderPlaceCmd())
	cmd.AddCommand(orderListCmd())
	cmd.AddCommand(orderShowCmd())

	return cmd
}

func orderPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place [client-id] [product-id] [quantity]",
		Short: "Place a new order",
		Long: `Place an order for a client and product. The quantity must not
exceed the product's current stock.

Examples:
  stockroom order place 1 2 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.OrderService().PlaceOrder(ctx, primary.PlaceOrderRequest{
				ClientID:  args[0],
				ProductID: args[1],
				Quantity:  args[2],
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Placed order %d (total %d, %d left in stock)\n",
				resp.OrderID, resp.Total, resp.RemainingStock)
			if resp.ReceiptWarning != "" {
				color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ %s\n", resp.ReceiptWarning)
				return nil
			}
			fmt.Printf("  Receipt: %s\n", resp.ReceiptPath)
			return nil
		},
	}
}

func orderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orders, err := wire.OrderService().ListOrders(ctx)
			if err != nil {
				return err
			}

			if len(orders) == 0 {
				fmt.Println("No orders yet. Place one with: stockroom order place")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCLIENT\tPRODUCT\tQTY\tTOTAL\tPLACED")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
					o.ID, o.ClientName, o.ProductName, o.Quantity, o.Total, o.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			order, err := wire.OrderService().GetOrder(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Order %d\n", order.ID)
			fmt.Printf("  Client:  %s (id %d)\n", order.ClientName, order.ClientID)
			fmt.Printf("  Product: %s (id %d)\n", order.ProductName, order.ProductID)
			fmt.Printf("  Qty:     %d\n", order.Quantity)
			fmt.Printf("  Total:   %d\n", order.Total)
			fmt.Printf("  Placed:  %s\n", order.CreatedAt)
			return nil
		},
	}
}
