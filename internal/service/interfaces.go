package service

import (
	"context"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

// SyncResult reports what one SyncRange call did, for the CLI.
type SyncResult struct {
	Start           domain.Day
	End             domain.Day
	Days            int
	OrdersProjected int
	TasksDeleted    int
	TasksWritten    int
}

// SyncService is the sole entry point to the derivation engine: it rebuilds
// every generated task whose due date falls in the window.
//
// Concurrent SyncRange calls over overlapping windows are not serialized
// here; interleaved delete/write could leave stale or duplicate rows.
// Callers run one sync at a time.
type SyncService interface {
	SyncRange(ctx context.Context, start domain.Day, numDays int) (*SyncResult, error)
}

// CreateOrderRequest carries order-entry input.
type CreateOrderRequest struct {
	CustomerID   string
	VarietyID    string
	Quantity     int
	DeliveryDate domain.Day
	Status       domain.OrderStatus // defaults to draft when empty
}

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// Advance moves the order's status forward; regressions are rejected.
	Advance(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type CustomerService interface {
	Create(ctx context.Context, name, contact, notes string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type VarietyService interface {
	Create(ctx context.Context, name string, harvestDays, blackoutDays, soakHours int) (*domain.Variety, error)
	GetByID(ctx context.Context, id string) (*domain.Variety, error)
	List(ctx context.Context) ([]*domain.Variety, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult reports what one order-book import inserted.
type ImportResult struct {
	Customers int
	Varieties int
	Orders    int
}

// ImportService loads an order-book JSON file and persists its customers,
// varieties and orders in one transaction.
type ImportService interface {
	ImportOrderBook(ctx context.Context, path string) (*ImportResult, error)
}

type TaskService interface {
	// AddUserTask creates a user-authored task; synchronization never
	// touches it. orderID optionally links the task to an order.
	AddUserTask(ctx context.Context, title string, due domain.Day, taskType domain.TaskType, orderID string) (*domain.Task, error)
	ListRange(ctx context.Context, from domain.Day, days int) ([]*domain.Task, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
