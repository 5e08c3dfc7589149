package domain

import "time"

// Variety is the growth profile for one crop. HarvestDays counts calendar
// days from sow to delivery-eligible harvest; BlackoutDays is the covered
// span after sowing; SoakHours > 0 means the seed takes a soak step (the
// hour value itself is informational, not a schedule).
//
// Any of the three may legitimately be zero: source data quality varies and
// the projector treats missing growth numbers as zero rather than failing.
type Variety struct {
	ID           string
	Name         string
	HarvestDays  int
	BlackoutDays int
	SoakHours    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsSoak reports whether orders of this variety get a soak occurrence on
// their sow date.
func (v *Variety) NeedsSoak() bool {
	return v.SoakHours > 0
}
