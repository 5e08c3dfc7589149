package importer

import (
	"fmt"
	"time"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/google/uuid"
)

// ImportedBook holds the converted domain objects ready for persistence,
// in insertion order (customers and varieties before the orders that
// reference them).
type ImportedBook struct {
	Customers []*domain.Customer
	Varieties []*domain.Variety
	Orders    []*domain.Order
}

// Convert transforms a validated OrderBook into domain objects. Call
// ValidateOrderBook first; Convert assumes the book is valid.
func Convert(book *OrderBook) (*ImportedBook, error) {
	now := time.Now().UTC()

	customerIDs := make(map[string]string) // ref -> UUID
	customers := make([]*domain.Customer, 0, len(book.Customers))
	for _, c := range book.Customers {
		id := uuid.New().String()
		customerIDs[c.Ref] = id
		customers = append(customers, &domain.Customer{
			ID:        id,
			Name:      c.Name,
			Contact:   c.Contact,
			Notes:     c.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	varietyIDs := make(map[string]string)
	varieties := make([]*domain.Variety, 0, len(book.Varieties))
	for _, v := range book.Varieties {
		id := uuid.New().String()
		varietyIDs[v.Ref] = id
		varieties = append(varieties, &domain.Variety{
			ID:           id,
			Name:         v.Name,
			HarvestDays:  v.HarvestDays,
			BlackoutDays: v.BlackoutDays,
			SoakHours:    v.SoakHours,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	orders := make([]*domain.Order, 0, len(book.Orders))
	for _, o := range book.Orders {
		customerID, ok := customerIDs[o.CustomerRef]
		if !ok {
			return nil, fmt.Errorf("customer_ref %q not found", o.CustomerRef)
		}
		varietyID, ok := varietyIDs[o.VarietyRef]
		if !ok {
			return nil, fmt.Errorf("variety_ref %q not found", o.VarietyRef)
		}

		delivery, err := domain.ParseDay(o.DeliveryDate)
		if err != nil {
			return nil, err
		}

		status := domain.OrderStatus(o.Status)
		if o.Status == "" {
			status = domain.OrderDraft
		}

		orders = append(orders, &domain.Order{
			ID:           uuid.New().String(),
			CustomerID:   customerID,
			VarietyID:    varietyID,
			Quantity:     o.Quantity,
			DeliveryDate: delivery,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return &ImportedBook{Customers: customers, Varieties: varieties, Orders: orders}, nil
}
