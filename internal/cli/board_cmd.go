package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Browse the upcoming schedule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("board needs a terminal; use `trayflow task list` instead")
			}

			start := domain.Today()
			tasks, err := app.Tasks.ListRange(context.Background(), start, days)
			if err != nil {
				return err
			}

			model := newBoardModel(start, days, tasks)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running board: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Days ahead to show")

	return cmd
}
