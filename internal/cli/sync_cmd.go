package cli

import (
	"context"
	"fmt"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	var from dayFlag
	var days int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the task board from current orders",
		Long: `Wipes every generated task in the window and rebuilds it from the
non-delivered orders. User-authored tasks are untouched. Safe to re-run;
repeated syncs of an unchanged order book converge to the same rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := from.orToday()
			if days == 0 {
				days = app.Cfg.SyncDays
			}

			res, err := app.Sync.SyncRange(context.Background(), start, days)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Sync Complete"))
			fmt.Printf("  Window:   %s .. %s (%d days)\n", res.Start, res.End, res.Days)
			fmt.Printf("  Orders:   %d projected\n", res.OrdersProjected)
			fmt.Printf("  Tasks:    %d cleared, %d written\n", res.TasksDeleted, res.TasksWritten)
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Window start (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Window length in days (default from config)")

	return cmd
}
