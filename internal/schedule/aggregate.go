package schedule

import "github.com/RoyalhillsFarm/trayflow-app/internal/domain"

// DetailKey identifies one line of a detail breakdown. Grow phases key by
// variety x customer so two cafes buying Pea on the same day stay distinct;
// the deliver phase keys by customer alone (Variety left empty). A struct
// key instead of a concatenated string means a customer named
// "Roots → Shoots" can never collide with a real composite.
type DetailKey struct {
	Variety  string
	Customer string
}

// Label renders the key the way the detail line shows it.
func (k DetailKey) Label() string {
	if k.Variety == "" {
		return k.Customer
	}
	return k.Variety + " → " + k.Customer
}

// Bucket accumulates everything scheduled for one (day, phase) slot.
//
// Summary is the coarse per-label quantity map: variety name for grow
// phases, customer name for deliveries. Detail is the fine map keyed by
// DetailKey. Breakdown is deliver-only: customer -> variety -> quantity,
// used to print each drop-off's composition.
type Bucket struct {
	Summary   map[string]int
	Detail    map[DetailKey]int
	Breakdown map[string]map[string]int
}

func newBucket() *Bucket {
	return &Bucket{
		Summary:   make(map[string]int),
		Detail:    make(map[DetailKey]int),
		Breakdown: make(map[string]map[string]int),
	}
}

// Total returns the summed tray quantity across the bucket. A zero total
// means the bucket renders nothing.
func (b *Bucket) Total() int {
	var total int
	for _, qty := range b.Summary {
		total += qty
	}
	return total
}

// Aggregate folds occurrences from many orders into per-day, per-phase
// buckets. It is local to one sync run; there is no shared state.
type Aggregate struct {
	buckets map[domain.Day]map[domain.Phase]*Bucket
}

func NewAggregate() *Aggregate {
	return &Aggregate{buckets: make(map[domain.Day]map[domain.Phase]*Bucket)}
}

// Add accumulates one occurrence. Repeated labels always add quantities,
// never overwrite.
func (a *Aggregate) Add(occ Occurrence) {
	phases, ok := a.buckets[occ.Date]
	if !ok {
		phases = make(map[domain.Phase]*Bucket)
		a.buckets[occ.Date] = phases
	}
	b, ok := phases[occ.Phase]
	if !ok {
		b = newBucket()
		phases[occ.Phase] = b
	}

	if occ.Phase == domain.PhaseDeliver {
		b.Summary[occ.Customer] += occ.Quantity
		b.Detail[DetailKey{Customer: occ.Customer}] += occ.Quantity
		byVariety, ok := b.Breakdown[occ.Customer]
		if !ok {
			byVariety = make(map[string]int)
			b.Breakdown[occ.Customer] = byVariety
		}
		byVariety[occ.Variety] += occ.Quantity
		return
	}

	b.Summary[occ.Variety] += occ.Quantity
	b.Detail[DetailKey{Variety: occ.Variety, Customer: occ.Customer}] += occ.Quantity
}

// Bucket returns the bucket for (day, phase), or nil when nothing is
// scheduled there.
func (a *Aggregate) Bucket(day domain.Day, phase domain.Phase) *Bucket {
	phases, ok := a.buckets[day]
	if !ok {
		return nil
	}
	return phases[phase]
}
