package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/RoyalhillsFarm/trayflow-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(db *sql.DB) OrderService {
	return NewOrderService(
		repository.NewSQLiteOrderRepo(db),
		repository.NewSQLiteCustomerRepo(db),
		repository.NewSQLiteVarietyRepo(db),
	)
}

func seedCustomerAndVariety(t *testing.T, db *sql.DB) (*domain.Customer, *domain.Variety) {
	t.Helper()
	ctx := context.Background()

	cust := testutil.NewTestCustomer("Cafe Bloom")
	require.NoError(t, repository.NewSQLiteCustomerRepo(db).Create(ctx, cust))

	variety := testutil.NewTestVariety("Radish")
	require.NoError(t, repository.NewSQLiteVarietyRepo(db).Create(ctx, variety))

	return cust, variety
}

func TestOrderService_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	cust, variety := seedCustomerAndVariety(t, db)
	svc := newOrderService(db)

	order, err := svc.Create(context.Background(), CreateOrderRequest{
		CustomerID:   cust.ID,
		VarietyID:    variety.ID,
		Quantity:     4,
		DeliveryDate: domain.MustDay("2025-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDraft, order.Status, "status defaults to draft")

	fetched, err := svc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.Quantity)
}

func TestOrderService_Create_UnknownReferences(t *testing.T) {
	db := testutil.NewTestDB(t)
	cust, variety := seedCustomerAndVariety(t, db)
	svc := newOrderService(db)
	ctx := context.Background()

	req := CreateOrderRequest{
		CustomerID:   "nope",
		VarietyID:    variety.ID,
		Quantity:     4,
		DeliveryDate: domain.MustDay("2025-04-01"),
	}
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	req.CustomerID = cust.ID
	req.VarietyID = "nope"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderService_Create_InvalidQuantity(t *testing.T) {
	db := testutil.NewTestDB(t)
	cust, variety := seedCustomerAndVariety(t, db)
	svc := newOrderService(db)

	_, err := svc.Create(context.Background(), CreateOrderRequest{
		CustomerID:   cust.ID,
		VarietyID:    variety.ID,
		Quantity:     0,
		DeliveryDate: domain.MustDay("2025-04-01"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestOrderService_Advance(t *testing.T) {
	db := testutil.NewTestDB(t)
	cust, variety := seedCustomerAndVariety(t, db)
	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderRequest{
		CustomerID:   cust.ID,
		VarietyID:    variety.ID,
		Quantity:     4,
		DeliveryDate: domain.MustDay("2025-04-01"),
		Status:       domain.OrderConfirmed,
	})
	require.NoError(t, err)

	advanced, err := svc.Advance(ctx, order.ID, domain.OrderPacked)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPacked, advanced.Status)

	// Regression is refused and the stored row stays packed.
	_, err = svc.Advance(ctx, order.ID, domain.OrderDraft)
	assert.ErrorIs(t, err, domain.ErrStatusRegression)

	fetched, err := svc.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPacked, fetched.Status)
}

func TestOrderService_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	cust, variety := seedCustomerAndVariety(t, db)
	svc := newOrderService(db)
	ctx := context.Background()

	order, err := svc.Create(ctx, CreateOrderRequest{
		CustomerID:   cust.ID,
		VarietyID:    variety.ID,
		Quantity:     2,
		DeliveryDate: domain.MustDay("2025-04-01"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.ID))
	_, err = svc.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
