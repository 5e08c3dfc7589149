package main

import (
	"fmt"
	"os"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli"
	"github.com/RoyalhillsFarm/trayflow-app/internal/config"
	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/RoyalhillsFarm/trayflow-app/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories.
	customerRepo := repository.NewSQLiteCustomerRepo(database)
	varietyRepo := repository.NewSQLiteVarietyRepo(database)
	orderRepo := repository.NewSQLiteOrderRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services.
	app := &cli.App{
		Cfg:       cfg,
		Sync:      service.NewSyncService(uow),
		Orders:    service.NewOrderService(orderRepo, customerRepo, varietyRepo),
		Customers: service.NewCustomerService(customerRepo),
		Varieties: service.NewVarietyService(varietyRepo),
		Tasks:     service.NewTaskService(taskRepo),
		Import:    service.NewImportService(uow),
	}

	return cli.NewRootCmd(app).Execute()
}
