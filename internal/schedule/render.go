package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

// Title prefixes and separators are a compatibility surface: existing task
// board and calendar consumers match on them byte-for-byte. The structured
// Kind/Phase columns are the authoritative encoding; these literals only
// make the rows readable on a printed sheet.
const (
	SummaryTitlePrefix = "SYS: "
	DetailTitlePrefix  = "SYS:DETAIL: "

	detailJoiner   = " — "
	entryJoiner    = ", "
	deliveryJoiner = " • "
)

var phaseLabels = map[domain.Phase]string{
	domain.PhaseSoak:     "Soak Seeds",
	domain.PhaseSow:      "Sow Trays",
	domain.PhaseSpray:    "Blackout Spray",
	domain.PhaseLightsOn: "Lights On (Unstack + First Water)",
	domain.PhaseWater:    "Water",
	domain.PhaseHarvest:  "Harvest + Pack",
	domain.PhaseDeliver:  "Deliveries",
}

// PhaseLabel returns the fixed human label for a phase.
func PhaseLabel(p domain.Phase) string {
	return phaseLabels[p]
}

// SummaryTitle renders the short title for a (day, phase) bucket. It
// carries no quantities; its existence alone says "this phase happens
// today".
func SummaryTitle(p domain.Phase) string {
	return SummaryTitlePrefix + PhaseLabel(p)
}

// DetailTitle renders the long title: phase label plus the per-line
// breakdown, sorted by descending quantity with ties broken by ascending
// label. Returns "" for an empty bucket.
func DetailTitle(p domain.Phase, b *Bucket) string {
	if b == nil || b.Total() == 0 {
		return ""
	}
	var body string
	if p == domain.PhaseDeliver {
		body = renderDeliveries(b)
	} else {
		body = renderGrowDetail(b)
	}
	return DetailTitlePrefix + PhaseLabel(p) + detailJoiner + body
}

// GeneratorKey builds the deterministic idempotency key for one generated
// task row. Unique per (day, phase, kind) within any sync, and the upsert
// conflict target together with the generated source tag.
func GeneratorKey(day domain.Day, p domain.Phase, kind domain.TaskKind) string {
	return day.String() + ":" + string(p) + ":" + string(kind)
}

type renderEntry struct {
	label string
	qty   int
}

// sortEntries orders entries by descending quantity, then ascending label.
func sortEntries(entries []renderEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].qty != entries[j].qty {
			return entries[i].qty > entries[j].qty
		}
		return entries[i].label < entries[j].label
	})
}

func renderGrowDetail(b *Bucket) string {
	entries := make([]renderEntry, 0, len(b.Detail))
	for key, qty := range b.Detail {
		entries = append(entries, renderEntry{label: key.Label(), qty: qty})
	}
	sortEntries(entries)

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s x%d", e.label, e.qty))
	}
	return strings.Join(parts, entryJoiner)
}

func renderDeliveries(b *Bucket) string {
	entries := make([]renderEntry, 0, len(b.Detail))
	for key, qty := range b.Detail {
		entries = append(entries, renderEntry{label: key.Customer, qty: qty})
	}
	sortEntries(entries)

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s — %d trays", e.label, e.qty)
		if byVariety := b.Breakdown[e.label]; len(byVariety) > 0 {
			varieties := make([]renderEntry, 0, len(byVariety))
			for name, qty := range byVariety {
				varieties = append(varieties, renderEntry{label: name, qty: qty})
			}
			sortEntries(varieties)
			pieces := make([]string, 0, len(varieties))
			for _, v := range varieties {
				pieces = append(pieces, fmt.Sprintf("%s x%d", v.label, v.qty))
			}
			line += " (" + strings.Join(pieces, entryJoiner) + ")"
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, deliveryJoiner)
}
