package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newVarietyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variety",
		Short: "Manage crop varieties and growth profiles",
	}
	cmd.AddCommand(
		newVarietyAddCmd(app),
		newVarietyListCmd(app),
		newVarietyRmCmd(app),
	)
	return cmd
}

func newVarietyAddCmd(app *App) *cobra.Command {
	var harvestDays, blackoutDays, soakHours int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a variety",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Varieties.Create(context.Background(), args[0], harvestDays, blackoutDays, soakHours)
			if err != nil {
				return err
			}
			fmt.Printf("Added variety %s (%s): %dd to harvest, %dd blackout, soak %dh\n",
				v.Name, v.ID[:8], v.HarvestDays, v.BlackoutDays, v.SoakHours)
			return nil
		},
	}

	cmd.Flags().IntVar(&harvestDays, "harvest-days", 0, "Calendar days from sow to harvest")
	cmd.Flags().IntVar(&blackoutDays, "blackout-days", 0, "Covered days after sowing")
	cmd.Flags().IntVar(&soakHours, "soak-hours", 0, "Seed soak hours (0 = no soak step)")

	return cmd
}

func newVarietyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List varieties",
		RunE: func(cmd *cobra.Command, args []string) error {
			varieties, err := app.Varieties.List(context.Background())
			if err != nil {
				return err
			}
			if len(varieties) == 0 {
				fmt.Println(formatter.Dim("No varieties yet."))
				return nil
			}

			headers := []string{"ID", "Name", "Harvest", "Blackout", "Soak"}
			rows := make([][]string, 0, len(varieties))
			for _, v := range varieties {
				soak := formatter.Dim("--")
				if v.NeedsSoak() {
					soak = strconv.Itoa(v.SoakHours) + "h"
				}
				rows = append(rows, []string{
					formatter.TruncID(v.ID),
					v.Name,
					fmt.Sprintf("%dd", v.HarvestDays),
					fmt.Sprintf("%dd", v.BlackoutDays),
					soak,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newVarietyRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a variety and its orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Varieties.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Variety deleted.")
			return nil
		},
	}
}
