// Package cli contains the cobra command trees. Commands translate
// arguments into service calls and render results; all rules live behind
// the primary ports.
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

// ClientCmd returns the client command
func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
		Long:  `Create, inspect, update and delete the clients orders are placed for.`,
	}

	cmd.AddCommand(clientAddCmd())
	cmd.AddCommand(clientListCmd())
	cmd.AddCommand(clientShowCmd())
	cmd.AddCommand(clientUpdateCmd())
	cmd.AddCommand(clientDeleteCmd())

	return cmd
}

func clientAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [address] [email]",
		Short: "Add a new client",
		Long: `Add a new client. All fields are required and the email must
contain an at-sign.

Examples:
  stockroom client add "Ada Lovelace" "12 Analytical Row" ada@example.com`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := wire.ClientService().CreateClient(ctx, primary.CreateClientRequest{
				Name:    args[0],
				Address: args[1],
				Email:   args[2],
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created client %d: %s\n", client.ID, client.Name)
			return nil
		},
	}
}

func clientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			clients, err := wire.ClientService().ListClients(ctx)
			if err != nil {
				return err
			}

			if len(clients) == 0 {
				fmt.Println("No clients yet. Add one with: stockroom client add")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tADDRESS\tEMAIL")
			for _, c := range clients {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Address, c.Email)
			}
			return w.Flush()
		},
	}
}

func clientShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := wire.ClientService().GetClient(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Client %d\n", client.ID)
			fmt.Printf("  Name:    %s\n", client.Name)
			fmt.Printf("  Address: %s\n", client.Address)
			fmt.Printf("  Email:   %s\n", client.Email)
			fmt.Printf("  Created: %s\n", client.CreatedAt)
			return nil
		},
	}
}

func clientUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [id] [name] [address] [email]",
		Short: "Replace all fields of a client",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := wire.ClientService().UpdateClient(ctx, primary.UpdateClientRequest{
				ID:      args[0],
				Name:    args[1],
				Address: args[2],
				Email:   args[3],
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated client %d: %s\n", client.ID, client.Name)
			return nil
		},
	}
}

func clientDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid client id %q", args[0])
			}

			if err := wire.ClientService().DeleteClient(ctx, id); err != nil {
				return err
			}

			fmt.Printf("✓ Deleted client %d\n", id)
			return nil
		},
	}
}
