package schedule

import "github.com/RoyalhillsFarm/trayflow-app/internal/domain"

// OrderInput is the joined view of one order the projector consumes:
// the order row plus the customer and variety names and the variety's
// growth numbers. Growth fields that were missing or negative in the
// source data are treated as zero, by policy; sow-day data entry is messy
// and a half-filled variety should still schedule something sensible.
type OrderInput struct {
	OrderID      string
	CustomerName string
	VarietyName  string
	Quantity     int
	DeliveryDate domain.Day
	Status       domain.OrderStatus
	HarvestDays  int
	BlackoutDays int
	SoakHours    int
}

// Occurrence is one derived (date, phase) event an order contributes, with
// its tray quantity. Occurrences are never persisted; they exist only
// between projection and aggregation.
type Occurrence struct {
	Date     domain.Day
	Phase    domain.Phase
	Quantity int
	Variety  string
	Customer string
}

// Project derives every production occurrence for one order.
//
// Date derivation:
//
//	sowDate      = deliveryDate - harvestDays   (deliveryDate when harvestDays == 0)
//	harvestDate  = deliveryDate - 1             (harvest + pack the day before delivery)
//	lightsOnDate = sowDate + blackoutDays       (sowDate when blackoutDays == 0)
//
// Delivered orders contribute nothing. Packed orders suppress every grow
// occurrence but keep their delivery: the trays are already in the cooler,
// the van still has to leave.
//
// Project is window-agnostic; the synchronizer discards occurrences that
// fall outside the range it is rebuilding.
func Project(o OrderInput) []Occurrence {
	if o.Status == domain.OrderDelivered {
		return nil
	}

	harvestDays := clampNonNegative(o.HarvestDays)
	blackoutDays := clampNonNegative(o.BlackoutDays)
	soakHours := clampNonNegative(o.SoakHours)

	sowDate := o.DeliveryDate
	if harvestDays > 0 {
		sowDate = o.DeliveryDate.AddDays(-harvestDays)
	}
	harvestDate := o.DeliveryDate.AddDays(-1)
	lightsOnDate := sowDate
	if blackoutDays > 0 {
		lightsOnDate = sowDate.AddDays(blackoutDays)
	}

	var occs []Occurrence
	emit := func(date domain.Day, phase domain.Phase) {
		occs = append(occs, Occurrence{
			Date:     date,
			Phase:    phase,
			Quantity: o.Quantity,
			Variety:  o.VarietyName,
			Customer: o.CustomerName,
		})
	}

	if o.Status != domain.OrderPacked {
		if soakHours > 0 {
			emit(sowDate, domain.PhaseSoak)
		}
		emit(sowDate, domain.PhaseSow)
		for d := 0; d < blackoutDays; d++ {
			emit(sowDate.AddDays(d), domain.PhaseSpray)
		}
		if !lightsOnDate.After(harvestDate) {
			emit(lightsOnDate, domain.PhaseLightsOn)
		}
		for d := lightsOnDate; !d.After(harvestDate); d = d.AddDays(1) {
			emit(d, domain.PhaseWater)
		}
		emit(harvestDate, domain.PhaseHarvest)
	}

	emit(o.DeliveryDate, domain.PhaseDeliver)

	return occs
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
