package cli

import (
	"context"
	"fmt"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "View and manage the task board",
	}
	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskDoneCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var from dayFlag
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a date window",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListRange(context.Background(), from.orToday(), days)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("Nothing scheduled. Try `trayflow sync` first."))
				return nil
			}

			headers := []string{"ID", "Due", "Task", "Status", "Source"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				title := t.Title
				if t.Phase != "" {
					title = formatter.PhaseStyle(t.Phase).Render(title)
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.DueDate.String(),
					title,
					formatter.TaskStatusPill(t.Status),
					formatter.SourceBadge(t.Source),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().Var(&from, "from", "Window start (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Window length in days")

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due dayFlag
	var orderID string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a hand-written task (never touched by sync)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.AddUserTask(context.Background(), args[0], due.day, domain.TaskTypeGeneral, orderID)
			if err != nil {
				return err
			}
			fmt.Printf("Added task %s due %s\n", t.ID[:8], t.DueDate)
			return nil
		},
	}

	cmd.Flags().Var(&due, "due", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&orderID, "order", "", "Optional order ID to link")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task done.")
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a hand-written task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task deleted.")
			return nil
		},
	}
}
