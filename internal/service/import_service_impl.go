package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/importer"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService creates an ImportService.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportOrderBook(ctx context.Context, path string) (*ImportResult, error) {
	book, err := importer.LoadOrderBook(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateOrderBook(book); len(errs) > 0 {
		return nil, fmt.Errorf("import file %s: %w", path, errors.Join(errs...))
	}

	converted, err := importer.Convert(book)
	if err != nil {
		return nil, err
	}

	// All rows land in one transaction; a bad row aborts the whole import
	// rather than leaving half an order book behind.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		customers := repository.NewSQLiteCustomerRepo(tx)
		for _, c := range converted.Customers {
			if err := customers.Create(ctx, c); err != nil {
				return err
			}
		}
		varieties := repository.NewSQLiteVarietyRepo(tx)
		for _, v := range converted.Varieties {
			if err := varieties.Create(ctx, v); err != nil {
				return err
			}
		}
		orders := repository.NewSQLiteOrderRepo(tx)
		for _, o := range converted.Orders {
			if err := orders.Create(ctx, o); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Customers: len(converted.Customers),
		Varieties: len(converted.Varieties),
		Orders:    len(converted.Orders),
	}, nil
}
