package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/google/uuid"
)

type varietyService struct {
	varieties repository.VarietyRepo
}

// NewVarietyService creates a VarietyService.
func NewVarietyService(varieties repository.VarietyRepo) VarietyService {
	return &varietyService{varieties: varieties}
}

func (s *varietyService) Create(ctx context.Context, name string, harvestDays, blackoutDays, soakHours int) (*domain.Variety, error) {
	if name == "" {
		return nil, errors.New("variety name is required")
	}
	if harvestDays < 0 || blackoutDays < 0 || soakHours < 0 {
		return nil, errors.New("variety growth numbers cannot be negative")
	}
	now := time.Now().UTC()
	v := &domain.Variety{
		ID:           uuid.New().String(),
		Name:         name,
		HarvestDays:  harvestDays,
		BlackoutDays: blackoutDays,
		SoakHours:    soakHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.varieties.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *varietyService) GetByID(ctx context.Context, id string) (*domain.Variety, error) {
	return s.varieties.GetByID(ctx, id)
}

func (s *varietyService) List(ctx context.Context) ([]*domain.Variety, error) {
	return s.varieties.List(ctx)
}

func (s *varietyService) Delete(ctx context.Context, id string) error {
	if _, err := s.varieties.GetByID(ctx, id); err != nil {
		return err
	}
	return s.varieties.Delete(ctx, id)
}
