package schedule

import (
	"testing"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummaryTitle(t *testing.T) {
	assert.Equal(t, "SYS: Sow Trays", SummaryTitle(domain.PhaseSow))
	assert.Equal(t, "SYS: Lights On (Unstack + First Water)", SummaryTitle(domain.PhaseLightsOn))
	assert.Equal(t, "SYS: Deliveries", SummaryTitle(domain.PhaseDeliver))
}

func TestDetailTitle_GrowPhase(t *testing.T) {
	b := newBucket()
	b.Summary["Pea"] = 8
	b.Detail[DetailKey{Variety: "Pea", Customer: "Cafe B"}] = 5
	b.Detail[DetailKey{Variety: "Pea", Customer: "Farm C"}] = 3

	got := DetailTitle(domain.PhaseSow, b)
	assert.Equal(t, "SYS:DETAIL: Sow Trays — Pea → Cafe B x5, Pea → Farm C x3", got)
}

func TestDetailTitle_SortsByQuantityDescThenLabelAsc(t *testing.T) {
	b := newBucket()
	b.Summary["Zinnia"] = 4
	b.Summary["Amaranth"] = 4
	b.Summary["Basil"] = 2
	b.Detail[DetailKey{Variety: "Zinnia", Customer: "Cafe"}] = 4
	b.Detail[DetailKey{Variety: "Amaranth", Customer: "Cafe"}] = 4
	b.Detail[DetailKey{Variety: "Basil", Customer: "Cafe"}] = 2

	got := DetailTitle(domain.PhaseHarvest, b)
	assert.Equal(t,
		"SYS:DETAIL: Harvest + Pack — Amaranth → Cafe x4, Zinnia → Cafe x4, Basil → Cafe x2",
		got)
}

func TestDetailTitle_Deliveries(t *testing.T) {
	b := newBucket()
	b.Summary["Cafe B"] = 5
	b.Summary["Farm C"] = 3
	b.Detail[DetailKey{Customer: "Cafe B"}] = 5
	b.Detail[DetailKey{Customer: "Farm C"}] = 3
	b.Breakdown["Cafe B"] = map[string]int{"Pea": 5}
	b.Breakdown["Farm C"] = map[string]int{"Pea": 3}

	got := DetailTitle(domain.PhaseDeliver, b)
	assert.Equal(t,
		"SYS:DETAIL: Deliveries — Cafe B — 5 trays (Pea x5) • Farm C — 3 trays (Pea x3)",
		got)
}

func TestDetailTitle_DeliveryBreakdownSorted(t *testing.T) {
	b := newBucket()
	b.Summary["Cafe B"] = 7
	b.Detail[DetailKey{Customer: "Cafe B"}] = 7
	b.Breakdown["Cafe B"] = map[string]int{"Radish": 2, "Pea": 5}

	got := DetailTitle(domain.PhaseDeliver, b)
	assert.Equal(t, "SYS:DETAIL: Deliveries — Cafe B — 7 trays (Pea x5, Radish x2)", got)
}

func TestDetailTitle_EmptyBucketRendersNothing(t *testing.T) {
	assert.Equal(t, "", DetailTitle(domain.PhaseSow, nil))
	assert.Equal(t, "", DetailTitle(domain.PhaseSow, newBucket()))
}

func TestGeneratorKey(t *testing.T) {
	day := domain.MustDay("2025-03-15")
	assert.Equal(t, "2025-03-15:lights_on:summary", GeneratorKey(day, domain.PhaseLightsOn, domain.KindSummary))
	assert.Equal(t, "2025-03-15:deliver:detail", GeneratorKey(day, domain.PhaseDeliver, domain.KindDetail))

	// Distinct per kind, so one day's summary and detail rows never collide.
	assert.NotEqual(t,
		GeneratorKey(day, domain.PhaseSow, domain.KindSummary),
		GeneratorKey(day, domain.PhaseSow, domain.KindDetail))
}

func TestPhaseLabel_AllPhasesCovered(t *testing.T) {
	for _, p := range domain.AllPhases {
		assert.NotEmpty(t, PhaseLabel(p), "phase %s has no label", p)
	}
}
