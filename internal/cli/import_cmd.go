package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import an order book from a JSON file",
		Long: `Reads customers, varieties and orders from a JSON order-book file and
inserts them in one transaction. Run 'trayflow sync' afterwards to derive
the schedule for the new orders.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportOrderBook(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d customers, %d varieties, %d orders.\n",
				res.Customers, res.Varieties, res.Orders)
			fmt.Println("Run `trayflow sync` to derive their schedule.")
			return nil
		},
	}
}
