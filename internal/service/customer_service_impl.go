package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/google/uuid"
)

type customerService struct {
	customers repository.CustomerRepo
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(customers repository.CustomerRepo) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(ctx context.Context, name, contact, notes string) (*domain.Customer, error) {
	if name == "" {
		return nil, errors.New("customer name is required")
	}
	now := time.Now().UTC()
	c := &domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Contact:   contact,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return err
	}
	// Orders cascade, and their tasks with them.
	return s.customers.Delete(ctx, id)
}
