package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/google/uuid"
)

type orderService struct {
	orders    repository.OrderRepo
	customers repository.CustomerRepo
	varieties repository.VarietyRepo
}

// NewOrderService creates an OrderService.
func NewOrderService(orders repository.OrderRepo, customers repository.CustomerRepo, varieties repository.VarietyRepo) OrderService {
	return &orderService{orders: orders, customers: customers, varieties: varieties}
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	status := req.Status
	if status == "" {
		status = domain.OrderDraft
	}

	// Fail early on dangling references; SQLite would also refuse, but the
	// error would name a constraint instead of the missing record.
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("resolving customer: %w", err)
	}
	if _, err := s.varieties.GetByID(ctx, req.VarietyID); err != nil {
		return nil, fmt.Errorf("resolving variety: %w", err)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:           uuid.New().String(),
		CustomerID:   req.CustomerID,
		VarietyID:    req.VarietyID,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *orderService) Advance(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.AdvanceTo(next, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("advancing order %s to %s: %w", id, next, err)
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return err
	}
	// Linked user tasks cascade with the row; generated tasks stop being
	// derived on the next sync of their window.
	return s.orders.Delete(ctx, id)
}
