package cli

import (
	"context"
	"fmt"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCustomerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage delivery customers",
	}
	cmd.AddCommand(
		newCustomerAddCmd(app),
		newCustomerListCmd(app),
		newCustomerRmCmd(app),
	)
	return cmd
}

func newCustomerAddCmd(app *App) *cobra.Command {
	var contact, notes string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Customers.Create(context.Background(), args[0], contact, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Added customer %s (%s)\n", c.Name, c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&contact, "contact", "", "Contact details")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newCustomerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := app.Customers.List(context.Background())
			if err != nil {
				return err
			}
			if len(customers) == 0 {
				fmt.Println(formatter.Dim("No customers yet."))
				return nil
			}

			headers := []string{"ID", "Name", "Contact"}
			rows := make([][]string, 0, len(customers))
			for _, c := range customers {
				rows = append(rows, []string{formatter.TruncID(c.ID), c.Name, c.Contact})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newCustomerRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a customer and their orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Customers.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Customer deleted.")
			return nil
		},
	}
}
