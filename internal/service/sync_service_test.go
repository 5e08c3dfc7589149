package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/RoyalhillsFarm/trayflow-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPeaOrders inserts two confirmed pea orders delivering 2025-03-19:
// 5 trays for Cafe B, 3 trays for Farm C. Pea grows 7 days with 3 under
// blackout, no soak.
func seedPeaOrders(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	variety := testutil.NewTestVariety("Pea", testutil.WithHarvestDays(7), testutil.WithBlackoutDays(3))
	require.NoError(t, repository.NewSQLiteVarietyRepo(db).Create(ctx, variety))

	custRepo := repository.NewSQLiteCustomerRepo(db)
	orderRepo := repository.NewSQLiteOrderRepo(db)
	delivery := domain.MustDay("2025-03-19")

	cafe := testutil.NewTestCustomer("Cafe B")
	require.NoError(t, custRepo.Create(ctx, cafe))
	require.NoError(t, orderRepo.Create(ctx, testutil.NewTestOrder(cafe.ID, variety.ID, delivery, testutil.WithQuantity(5))))

	farm := testutil.NewTestCustomer("Farm C")
	require.NoError(t, custRepo.Create(ctx, farm))
	require.NoError(t, orderRepo.Create(ctx, testutil.NewTestOrder(farm.ID, variety.ID, delivery, testutil.WithQuantity(3))))
}

func listWindow(t *testing.T, db *sql.DB, from string, days int) []*domain.Task {
	t.Helper()
	start := domain.MustDay(from)
	tasks, err := repository.NewSQLiteTaskRepo(db).ListByDueRange(context.Background(), start, start.AddDays(days-1))
	require.NoError(t, err)
	return tasks
}

func titlesByKey(tasks []*domain.Task) map[string]string {
	m := make(map[string]string, len(tasks))
	for _, task := range tasks {
		if task.IsGenerated() {
			m[task.GeneratorKey] = task.Title
		}
	}
	return m
}

func TestSyncRange_DerivesFullSchedule(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	svc := NewSyncService(testutil.NewTestUoW(db))

	res, err := svc.SyncRange(context.Background(), domain.MustDay("2025-03-10"), 14)
	require.NoError(t, err)
	assert.Equal(t, domain.MustDay("2025-03-23"), res.End)
	assert.Equal(t, 2, res.OrdersProjected)
	assert.Equal(t, 0, res.TasksDeleted)

	// Pea for 03-19 delivery: sow 03-12, spray 03-12..14, lights on 03-15,
	// water 03-15..18, harvest 03-18, deliver 03-19. Eleven non-empty
	// (day, phase) slots, each a summary plus a detail row.
	tasks := listWindow(t, db, "2025-03-10", 14)
	assert.Len(t, tasks, 22)
	assert.Equal(t, 22, res.TasksWritten)

	byKey := titlesByKey(tasks)
	assert.Equal(t, "SYS: Sow Trays", byKey["2025-03-12:sow:summary"])
	assert.Equal(t,
		"SYS:DETAIL: Sow Trays — Pea → Cafe B x5, Pea → Farm C x3",
		byKey["2025-03-12:sow:detail"])
	assert.Equal(t,
		"SYS:DETAIL: Deliveries — Cafe B — 5 trays (Pea x5) • Farm C — 3 trays (Pea x3)",
		byKey["2025-03-19:deliver:detail"])
	assert.Equal(t, "SYS: Lights On (Unstack + First Water)", byKey["2025-03-15:lights_on:summary"])

	// No rows on days with nothing scheduled.
	assert.Empty(t, listWindow(t, db, "2025-03-10", 2))
	assert.Empty(t, listWindow(t, db, "2025-03-20", 4))
}

func TestSyncRange_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	svc := NewSyncService(testutil.NewTestUoW(db))
	start := domain.MustDay("2025-03-10")

	_, err := svc.SyncRange(context.Background(), start, 14)
	require.NoError(t, err)
	first := titlesByKey(listWindow(t, db, "2025-03-10", 14))

	res, err := svc.SyncRange(context.Background(), start, 14)
	require.NoError(t, err)
	assert.Equal(t, 22, res.TasksDeleted, "resync clears the window first")

	second := titlesByKey(listWindow(t, db, "2025-03-10", 14))
	assert.Equal(t, first, second, "unchanged orders must resync to identical rows")
}

func TestSyncRange_OnlyTouchesItsWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	svc := NewSyncService(testutil.NewTestUoW(db))
	ctx := context.Background()

	_, err := svc.SyncRange(ctx, domain.MustDay("2025-03-10"), 14)
	require.NoError(t, err)

	before := listWindow(t, db, "2025-03-10", 5) // 03-10..03-14: sow + spray rows
	require.NotEmpty(t, before)

	// Resync a disjoint later window; earlier rows keep their identities.
	res, err := svc.SyncRange(ctx, domain.MustDay("2025-03-15"), 5)
	require.NoError(t, err)
	assert.NotZero(t, res.TasksDeleted)

	after := listWindow(t, db, "2025-03-10", 5)
	require.Len(t, after, len(before))
	ids := func(tasks []*domain.Task) []string {
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.ID
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, ids(before), ids(after))
}

func TestSyncRange_NeverTouchesUserTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	taskRepo := repository.NewSQLiteTaskRepo(db)
	svc := NewSyncService(testutil.NewTestUoW(db))
	ctx := context.Background()

	user := testutil.NewTestUserTask("service the seeder", domain.MustDay("2025-03-12"))
	require.NoError(t, taskRepo.Create(ctx, user))

	_, err := svc.SyncRange(ctx, domain.MustDay("2025-03-10"), 14)
	require.NoError(t, err)
	_, err = svc.SyncRange(ctx, domain.MustDay("2025-03-10"), 14)
	require.NoError(t, err)

	fetched, err := taskRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "service the seeder", fetched.Title)
	assert.Equal(t, domain.SourceUser, fetched.Source)
}

func TestSyncRange_EmptyWindowIsNoOp(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	svc := NewSyncService(testutil.NewTestUoW(db))

	for _, days := range []int{0, -3} {
		res, err := svc.SyncRange(context.Background(), domain.MustDay("2025-03-10"), days)
		require.NoError(t, err)
		assert.Zero(t, res.Days)
		assert.Zero(t, res.TasksDeleted)
		assert.Zero(t, res.TasksWritten)
	}
	assert.Empty(t, listWindow(t, db, "2025-03-01", 60))
}

func TestSyncRange_FailureRollsBackWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedPeaOrders(t, db)
	ctx := context.Background()

	good := NewSyncService(testutil.NewTestUoW(db))
	_, err := good.SyncRange(ctx, domain.MustDay("2025-03-10"), 14)
	require.NoError(t, err)
	before := titlesByKey(listWindow(t, db, "2025-03-10", 14))
	require.Len(t, before, 22)

	// Exec 1 is the window delete; exec 4 lands mid-upsert.
	injected := errors.New("disk full")
	bad := NewSyncService(&testutil.FailOnNthExecUoW{DB: db, FailOn: 4, Err: injected})
	_, err = bad.SyncRange(ctx, domain.MustDay("2025-03-10"), 14)
	require.ErrorIs(t, err, injected)

	after := titlesByKey(listWindow(t, db, "2025-03-10", 14))
	assert.Equal(t, before, after, "failed sync must leave the window untouched")
}
