package domain

import "time"

// Customer is a delivery destination. Only the display name matters to
// scheduling; contact details are kept for the delivery sheet.
type Customer struct {
	ID        string
	Name      string
	Contact   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
