package cli

import (
	"github.com/RoyalhillsFarm/trayflow-app/internal/config"
	"github.com/RoyalhillsFarm/trayflow-app/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cfg       *config.Config
	Sync      service.SyncService
	Orders    service.OrderService
	Customers service.CustomerService
	Varieties service.VarietyService
	Tasks     service.TaskService
	Import    service.ImportService
}

// NewRootCmd creates the top-level "trayflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trayflow",
		Short: "Microgreens production planner",
		Long: `trayflow derives the daily grow schedule (soak, sow, blackout spray,
lights-on, watering, harvest, delivery) from standing customer orders and
keeps the task board in sync with it.`,
	}

	root.AddCommand(
		newSyncCmd(app),
		newOrderCmd(app),
		newCustomerCmd(app),
		newVarietyCmd(app),
		newTaskCmd(app),
		newSheetCmd(app),
		newBoardCmd(app),
		newImportCmd(app),
	)

	return root
}
