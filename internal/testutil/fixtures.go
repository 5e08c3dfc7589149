package testutil

import (
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/google/uuid"
)

// Customer options
type CustomerOption func(*domain.Customer)

func WithContact(c string) CustomerOption {
	return func(cust *domain.Customer) {
		cust.Contact = c
	}
}

func WithCustomerNotes(n string) CustomerOption {
	return func(cust *domain.Customer) {
		cust.Notes = n
	}
}

func NewTestCustomer(name string, opts ...CustomerOption) *domain.Customer {
	now := time.Now().UTC()
	c := &domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Variety options
type VarietyOption func(*domain.Variety)

func WithHarvestDays(d int) VarietyOption {
	return func(v *domain.Variety) {
		v.HarvestDays = d
	}
}

func WithBlackoutDays(d int) VarietyOption {
	return func(v *domain.Variety) {
		v.BlackoutDays = d
	}
}

func WithSoakHours(h int) VarietyOption {
	return func(v *domain.Variety) {
		v.SoakHours = h
	}
}

// NewTestVariety defaults to a pea-like profile: 10 days seed to harvest,
// 3 days under blackout, no soak.
func NewTestVariety(name string, opts ...VarietyOption) *domain.Variety {
	now := time.Now().UTC()
	v := &domain.Variety{
		ID:           uuid.New().String(),
		Name:         name,
		HarvestDays:  10,
		BlackoutDays: 3,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Order options
type OrderOption func(*domain.Order)

func WithQuantity(q int) OrderOption {
	return func(o *domain.Order) {
		o.Quantity = q
	}
}

func WithOrderStatus(s domain.OrderStatus) OrderOption {
	return func(o *domain.Order) {
		o.Status = s
	}
}

func NewTestOrder(customerID, varietyID string, delivery domain.Day, opts ...OrderOption) *domain.Order {
	now := time.Now().UTC()
	o := &domain.Order{
		ID:           uuid.New().String(),
		CustomerID:   customerID,
		VarietyID:    varietyID,
		Quantity:     4,
		DeliveryDate: delivery,
		Status:       domain.OrderConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithOrderLink(orderID string) TaskOption {
	return func(t *domain.Task) {
		t.OrderID = orderID
	}
}

// NewTestUserTask builds a hand-written task, the kind synchronization must
// never touch.
func NewTestUserTask(title string, due domain.Day, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		DueDate:   due,
		Status:    domain.TaskPlanned,
		Type:      domain.TaskTypeGeneral,
		Source:    domain.SourceUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
