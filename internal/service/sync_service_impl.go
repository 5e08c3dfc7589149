package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/db"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/RoyalhillsFarm/trayflow-app/internal/schedule"
	"github.com/google/uuid"
)

type syncService struct {
	uow db.UnitOfWork
}

// NewSyncService creates the synchronizer. All storage access happens
// through tx-scoped repositories inside one unit of work.
func NewSyncService(uow db.UnitOfWork) SyncService {
	return &syncService{uow: uow}
}

// SyncRange rebuilds the generated tasks for the inclusive window
// [start, start+numDays-1]:
//
//  1. delete every generated task due in the window
//  2. load all non-delivered orders with customer/variety joins
//  3. project each order, discard out-of-window occurrences, aggregate
//  4. render and upsert two rows (summary + detail) per non-empty
//     (day, phase) bucket, keyed by the deterministic generator key
//
// The whole sequence runs in one transaction: any step failing rolls the
// window back to its pre-sync state. Re-running with unchanged orders is a
// no-op net of timestamps; the generator key is the upsert conflict target,
// so even a racing duplicate converges rather than erroring.
func (s *syncService) SyncRange(ctx context.Context, start domain.Day, numDays int) (*SyncResult, error) {
	res := &SyncResult{Start: start, End: start, Days: 0}
	if numDays <= 0 {
		return res, nil
	}

	window := domain.DayRange(start, numDays)
	end := window[len(window)-1]
	res.End = end
	res.Days = numDays

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txOrders := repository.NewSQLiteOrderRepo(tx)

		deleted, err := txTasks.DeleteGeneratedInRange(ctx, start, end)
		if err != nil {
			return fmt.Errorf("clearing window %s..%s: %w", start, end, err)
		}
		res.TasksDeleted = deleted

		active, err := txOrders.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("loading active orders: %w", err)
		}
		res.OrdersProjected = len(active)

		agg := schedule.NewAggregate()
		for _, a := range active {
			occs := schedule.Project(schedule.OrderInput{
				OrderID:      a.Order.ID,
				CustomerName: a.CustomerName,
				VarietyName:  a.VarietyName,
				Quantity:     a.Order.Quantity,
				DeliveryDate: a.Order.DeliveryDate,
				Status:       a.Order.Status,
				HarvestDays:  a.HarvestDays,
				BlackoutDays: a.BlackoutDays,
				SoakHours:    a.SoakHours,
			})
			for _, occ := range occs {
				if occ.Date.Before(start) || occ.Date.After(end) {
					continue
				}
				agg.Add(occ)
			}
		}

		now := time.Now().UTC()
		var batch []*domain.Task
		for _, day := range window {
			for _, phase := range domain.AllPhases {
				bucket := agg.Bucket(day, phase)
				if bucket == nil || bucket.Total() == 0 {
					continue
				}
				batch = append(batch,
					newGeneratedTask(day, phase, domain.KindSummary, schedule.SummaryTitle(phase), now),
					newGeneratedTask(day, phase, domain.KindDetail, schedule.DetailTitle(phase, bucket), now),
				)
			}
		}

		if err := txTasks.UpsertGenerated(ctx, batch); err != nil {
			return fmt.Errorf("writing generated tasks: %w", err)
		}
		res.TasksWritten = len(batch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func newGeneratedTask(day domain.Day, phase domain.Phase, kind domain.TaskKind, title string, now time.Time) *domain.Task {
	return &domain.Task{
		ID:           uuid.New().String(),
		Title:        title,
		DueDate:      day,
		Status:       domain.TaskPlanned,
		Type:         phase.TaskType(),
		Source:       domain.SourceGenerated,
		Phase:        phase,
		Kind:         kind,
		GeneratorKey: schedule.GeneratorKey(day, phase, kind),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
