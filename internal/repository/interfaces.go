package repository

import (
	"context"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

// ActiveOrder is the joined view of one non-delivered order with its
// customer and variety resolved, exactly what the projector consumes.
type ActiveOrder struct {
	Order        domain.Order
	CustomerName string
	VarietyName  string
	HarvestDays  int
	BlackoutDays int
	SoakHours    int
}

type CustomerRepo interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type VarietyRepo interface {
	Create(ctx context.Context, v *domain.Variety) error
	GetByID(ctx context.Context, id string) (*domain.Variety, error)
	List(ctx context.Context) ([]*domain.Variety, error)
	Update(ctx context.Context, v *domain.Variety) error
	Delete(ctx context.Context, id string) error
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// ListActive returns every order with status != delivered, joined with
	// customer and variety. This is the synchronizer's sole order read.
	ListActive(ctx context.Context) ([]ActiveOrder, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByDueRange returns all tasks (generated and user) with due dates
	// in the inclusive range, ordered by due date then title.
	ListByDueRange(ctx context.Context, from, to domain.Day) ([]*domain.Task, error)
	// DeleteGeneratedInRange wipes generated rows with due dates in the
	// inclusive range. User tasks are never matched.
	DeleteGeneratedInRange(ctx context.Context, from, to domain.Day) (int, error)
	// UpsertGenerated writes a batch of generated rows using
	// (source, generator_key) as the conflict target, so replayed syncs
	// converge instead of duplicating.
	UpsertGenerated(ctx context.Context, tasks []*domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}
