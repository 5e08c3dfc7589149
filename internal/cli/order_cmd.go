package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage standing tray orders",
	}
	cmd.AddCommand(
		newOrderAddCmd(app),
		newOrderListCmd(app),
		newOrderStatusCmd(app),
		newOrderRmCmd(app),
	)
	return cmd
}

func newOrderAddCmd(app *App) *cobra.Command {
	var customerID, varietyID string
	var delivery dayFlag
	var quantity int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an order",
		Long: `Add an order for N trays of one variety delivered on one date.
With no flags on a terminal, prompts interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := service.CreateOrderRequest{
				CustomerID: customerID,
				VarietyID:  varietyID,
				Quantity:   quantity,
			}

			interactive := customerID == "" && varietyID == "" && delivery.day.IsZero() &&
				isatty.IsTerminal(os.Stdin.Fd())
			if interactive {
				var err error
				if req, err = runOrderForm(ctx, app); err != nil {
					return err
				}
			} else {
				req.DeliveryDate = delivery.day
			}

			order, err := app.Orders.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("Added order %s: %d trays, delivering %s\n",
				order.ID[:8], order.Quantity, order.DeliveryDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "Customer ID")
	cmd.Flags().StringVar(&varietyID, "variety", "", "Variety ID")
	cmd.Flags().IntVar(&quantity, "qty", 1, "Tray quantity")
	cmd.Flags().Var(&delivery, "delivery", "Delivery date (YYYY-MM-DD)")

	return cmd
}

func newOrderListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			orders, err := app.Orders.List(ctx)
			if err != nil {
				return err
			}

			customerNames, varietyNames, err := nameLookups(ctx, app)
			if err != nil {
				return err
			}

			headers := []string{"ID", "Delivery", "Customer", "Variety", "Trays", "Status"}
			var rows [][]string
			for _, o := range orders {
				if !all && o.Status == domain.OrderDelivered {
					continue
				}
				rows = append(rows, []string{
					formatter.TruncID(o.ID),
					o.DeliveryDate.String(),
					customerNames[o.CustomerID],
					varietyNames[o.VarietyID],
					strconv.Itoa(o.Quantity),
					formatter.OrderStatusPill(o.Status),
				})
			}
			if len(rows) == 0 {
				fmt.Println(formatter.Dim("No orders."))
				return nil
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include delivered orders")

	return cmd
}

func newOrderStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <draft|confirmed|packed|delivered>",
		Short: "Advance an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next := domain.OrderStatus(args[1])
			if !domain.ValidOrderStatuses[args[1]] {
				return fmt.Errorf("unknown status %q", args[1])
			}
			order, err := app.Orders.Advance(context.Background(), args[0], next)
			if err != nil {
				return err
			}
			fmt.Printf("Order %s is now %s\n", order.ID[:8], order.Status)
			if next == domain.OrderPacked || next == domain.OrderDelivered {
				fmt.Println(formatter.Dim("Run `trayflow sync` to update the task board."))
			}
			return nil
		},
	}
}

func newOrderRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Orders.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Order deleted. Run `trayflow sync` to update the task board.")
			return nil
		},
	}
}

// nameLookups builds id -> display-name maps for rendering order tables.
func nameLookups(ctx context.Context, app *App) (map[string]string, map[string]string, error) {
	customers, err := app.Customers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	varieties, err := app.Varieties.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	varietyNames := make(map[string]string, len(varieties))
	for _, v := range varieties {
		varietyNames[v.ID] = v.Name
	}
	return customerNames, varietyNames, nil
}
