package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/ports/primary"
	"github.com/example/stockroom/internal/wire"
)

// ProductCmd returns the product command
func ProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
		Long:  `Create, inspect, update and delete stocked products.`,
	}

	cmd.AddCommand(productAddCmd())
	cmd.AddCommand(productListCmd())
	cmd.AddCommand(productShowCmd())
	cmd.AddCommand(productUpdateCmd())
	cmd.AddCommand(productDeleteCmd())

	return cmd
}

func productAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [price] [quantity]",
		Short: "Add a new product",
		Long: `Add a new product. Price and quantity must be non-negative
integers; quantity is the available stock.

Examples:
  stockroom product add Widget 10 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			product, err := wire.ProductService().CreateProduct(ctx, primary.CreateProductRequest{
				Name:     args[0],
				Price:    args[1],
				Quantity: args[2],
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created product %d: %s (price %d, stock %d)\n",
				product.ID, product.Name, product.Price, product.Quantity)
			return nil
		},
	}
}

func productListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			products, err := wire.ProductService().ListProducts(ctx)
			if err != nil {
				return err
			}

			if len(products) == 0 {
				fmt.Println("No products yet. Add one with: stockroom product add")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", p.ID, p.Name, p.Price, p.Quantity)
			}
			return w.Flush()
		},
	}
}

func productShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			product, err := wire.ProductService().GetProduct(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Product %d\n", product.ID)
			fmt.Printf("  Name:    %s\n", product.Name)
			fmt.Printf("  Price:   %d\n", product.Price)
			fmt.Printf("  Stock:   %d\n", product.Quantity)
			fmt.Printf("  Created: %s\n", product.CreatedAt)
			return nil
		},
	}
}

func productUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [id] [name] [price] [quantity]",
		Short: "Replace all fields of a product",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			product, err := wire.ProductService().UpdateProduct(ctx, primary.UpdateProductRequest{
				ID:       args[0],
				Name:     args[1],
				Price:    args[2],
				Quantity: args[3],
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated product %d: %s (price %d, stock %d)\n",
				product.ID, product.Name, product.Price, product.Quantity)
			return nil
		},
	}
}

func productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if err := wire.ProductService().DeleteProduct(ctx, id); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted product %d\n", id)
			return nil
		},
	}
}
