package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/schedule"
	"github.com/spf13/cobra"
)

func newSheetCmd(app *App) *cobra.Command {
	var date dayFlag

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Print one day's production sheet",
		Long: `Prints the day's phases in execution order with their detail
breakdowns, for pinning up in the grow room.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := date.orToday()

			tasks, err := app.Tasks.ListRange(context.Background(), day, 1)
			if err != nil {
				return err
			}

			// Index detail rows by phase; the sheet prints from the
			// structured columns, not by parsing titles.
			detailByPhase := make(map[domain.Phase]*domain.Task)
			var userTasks []*domain.Task
			for _, t := range tasks {
				switch {
				case t.IsGenerated() && t.Kind == domain.KindDetail:
					detailByPhase[t.Phase] = t
				case !t.IsGenerated():
					userTasks = append(userTasks, t)
				}
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Production Sheet — %s (%s)", day, day.Weekday())))
			printed := false
			for _, phase := range domain.AllPhases {
				t, ok := detailByPhase[phase]
				if !ok {
					continue
				}
				printed = true
				label := schedule.PhaseLabel(phase)
				body := strings.TrimPrefix(t.Title, schedule.DetailTitlePrefix+label+" — ")
				fmt.Printf("\n%s\n", formatter.PhaseStyle(phase).Render("▸ "+label))
				fmt.Printf("    %s\n", body)
			}
			if !printed {
				fmt.Println(formatter.Dim("\nNothing scheduled. Try `trayflow sync` first."))
			}

			if len(userTasks) > 0 {
				fmt.Printf("\n%s\n", formatter.StyleBold.Render("▸ Other Tasks"))
				for _, t := range userTasks {
					fmt.Printf("    %s %s\n", formatter.TaskStatusPill(t.Status), t.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Sheet date (YYYY-MM-DD, default today)")

	return cmd
}
