package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stockroom/internal/cli"
	"github.com/example/stockroom/internal/db"
	"github.com/example/stockroom/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "stockroom",
		Short:   "Stockroom - inventory and order management",
		Version: version.String(),
		Long: `Stockroom is a CLI tool for managing clients, products and orders.
Placing an order decrements product stock atomically and writes a text
receipt for the client.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ClientCmd())
	rootCmd.AddCommand(cli.ProductCmd())
	rootCmd.AddCommand(cli.OrderCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	err := rootCmd.Execute()
	if closeErr := db.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
