package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) AddUserTask(ctx context.Context, title string, due domain.Day, taskType domain.TaskType, orderID string) (*domain.Task, error) {
	if title == "" {
		return nil, errors.New("task title is required")
	}
	if due.IsZero() {
		return nil, errors.New("task due date is required")
	}
	if taskType == "" {
		taskType = domain.TaskTypeGeneral
	}
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		DueDate:   due,
		Status:    domain.TaskPlanned,
		Type:      taskType,
		Source:    domain.SourceUser,
		OrderID:   orderID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) ListRange(ctx context.Context, from domain.Day, days int) ([]*domain.Task, error) {
	if days <= 0 {
		return nil, nil
	}
	return s.tasks.ListByDueRange(ctx, from, from.AddDays(days-1))
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.tasks.SetStatus(ctx, id, domain.TaskDone)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Generated rows belong to the synchronizer; a hand-deleted one would
	// reappear on the next sync anyway.
	if t.IsGenerated() {
		return fmt.Errorf("task %s is machine-generated; it is replaced on every sync", id)
	}
	return s.tasks.Delete(ctx, id)
}
