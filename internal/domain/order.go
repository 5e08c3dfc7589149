package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidQuantity rejects orders for zero or negative trays.
	ErrInvalidQuantity = errors.New("order quantity must be a positive tray count")
	// ErrStatusRegression rejects backward lifecycle moves such as
	// packed -> confirmed.
	ErrStatusRegression = errors.New("order status can only advance")
)

// Order is a customer's commitment to receive Quantity trays of one variety
// on DeliveryDate. DeliveryDate is a pure calendar day; every derived
// production date is computed from it with Day arithmetic.
type Order struct {
	ID           string
	CustomerID   string
	VarietyID    string
	Quantity     int
	DeliveryDate Day
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the order invariants that must hold before persisting.
func (o *Order) Validate() error {
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !ValidOrderStatuses[string(o.Status)] {
		return errors.New("unknown order status: " + string(o.Status))
	}
	if o.DeliveryDate.IsZero() {
		return errors.New("order delivery date is required")
	}
	return nil
}

// AdvanceTo moves the order forward in its lifecycle, enforcing
// monotonicity. Delivered is terminal.
func (o *Order) AdvanceTo(next OrderStatus, now time.Time) error {
	if !o.Status.CanAdvanceTo(next) {
		return ErrStatusRegression
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}
