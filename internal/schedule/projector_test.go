package schedule

import (
	"testing"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peaOrder() OrderInput {
	return OrderInput{
		OrderID:      "o1",
		CustomerName: "Cafe B",
		VarietyName:  "Pea",
		Quantity:     5,
		DeliveryDate: domain.MustDay("2025-03-19"),
		Status:       domain.OrderConfirmed,
		HarvestDays:  7,
		BlackoutDays: 3,
		SoakHours:    8,
	}
}

// occurrencesOn collects the phases emitted for one date.
func occurrencesOn(occs []Occurrence, date string) []domain.Phase {
	var phases []domain.Phase
	for _, o := range occs {
		if o.Date.String() == date {
			phases = append(phases, o.Phase)
		}
	}
	return phases
}

func TestProject_FullGrowCycle(t *testing.T) {
	occs := Project(peaOrder())

	// sow = 03-19 - 7 = 03-12, lights on = 03-12 + 3 = 03-15,
	// harvest = 03-18, water daily from lights-on through harvest.
	assert.ElementsMatch(t,
		[]domain.Phase{domain.PhaseSoak, domain.PhaseSow, domain.PhaseSpray},
		occurrencesOn(occs, "2025-03-12"))
	assert.ElementsMatch(t, []domain.Phase{domain.PhaseSpray}, occurrencesOn(occs, "2025-03-13"))
	assert.ElementsMatch(t, []domain.Phase{domain.PhaseSpray}, occurrencesOn(occs, "2025-03-14"))
	assert.ElementsMatch(t,
		[]domain.Phase{domain.PhaseLightsOn, domain.PhaseWater},
		occurrencesOn(occs, "2025-03-15"))
	assert.ElementsMatch(t, []domain.Phase{domain.PhaseWater}, occurrencesOn(occs, "2025-03-16"))
	assert.ElementsMatch(t, []domain.Phase{domain.PhaseWater}, occurrencesOn(occs, "2025-03-17"))
	assert.ElementsMatch(t,
		[]domain.Phase{domain.PhaseWater, domain.PhaseHarvest},
		occurrencesOn(occs, "2025-03-18"))
	assert.ElementsMatch(t, []domain.Phase{domain.PhaseDeliver}, occurrencesOn(occs, "2025-03-19"))

	for _, occ := range occs {
		assert.Equal(t, 5, occ.Quantity)
		assert.Equal(t, "Pea", occ.Variety)
		assert.Equal(t, "Cafe B", occ.Customer)
	}
}

func TestProject_NoSoak(t *testing.T) {
	o := peaOrder()
	o.SoakHours = 0
	occs := Project(o)

	for _, occ := range occs {
		assert.NotEqual(t, domain.PhaseSoak, occ.Phase)
	}
}

func TestProject_NoBlackout(t *testing.T) {
	o := peaOrder()
	o.BlackoutDays = 0
	occs := Project(o)

	// No spray days; lights come on at sowing.
	for _, occ := range occs {
		assert.NotEqual(t, domain.PhaseSpray, occ.Phase)
	}
	assert.Contains(t, occurrencesOn(occs, "2025-03-12"), domain.PhaseLightsOn)
}

func TestProject_DeliveredContributesNothing(t *testing.T) {
	o := peaOrder()
	o.Status = domain.OrderDelivered
	assert.Empty(t, Project(o))
}

func TestProject_PackedKeepsOnlyDelivery(t *testing.T) {
	o := peaOrder()
	o.Status = domain.OrderPacked
	occs := Project(o)

	require.Len(t, occs, 1)
	assert.Equal(t, domain.PhaseDeliver, occs[0].Phase)
	assert.Equal(t, domain.MustDay("2025-03-19"), occs[0].Date)
}

func TestProject_ZeroHarvestDaysSowsOnDelivery(t *testing.T) {
	o := peaOrder()
	o.HarvestDays = 0
	o.BlackoutDays = 0
	o.SoakHours = 0
	occs := Project(o)

	assert.Contains(t, occurrencesOn(occs, "2025-03-19"), domain.PhaseSow)
	assert.Contains(t, occurrencesOn(occs, "2025-03-19"), domain.PhaseDeliver)
	assert.Contains(t, occurrencesOn(occs, "2025-03-18"), domain.PhaseHarvest)
}

func TestProject_NegativeGrowthNumbersClampToZero(t *testing.T) {
	o := peaOrder()
	o.HarvestDays = -4
	o.BlackoutDays = -2
	o.SoakHours = -1

	zero := peaOrder()
	zero.HarvestDays = 0
	zero.BlackoutDays = 0
	zero.SoakHours = 0

	assert.Equal(t, Project(zero), Project(o))
}

func TestProject_DraftOrdersStillSchedule(t *testing.T) {
	o := peaOrder()
	o.Status = domain.OrderDraft
	assert.NotEmpty(t, Project(o))
}
