package domain

type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPacked    OrderStatus = "packed"
	OrderDelivered OrderStatus = "delivered"
)

// ValidOrderStatuses is the canonical set of accepted order status strings.
var ValidOrderStatuses = map[string]bool{
	"draft": true, "confirmed": true, "packed": true, "delivered": true,
}

// statusRank orders the lifecycle: draft -> confirmed -> packed -> delivered.
// Delivered is terminal; delivered orders never schedule production again.
var statusRank = map[OrderStatus]int{
	OrderDraft:     0,
	OrderConfirmed: 1,
	OrderPacked:    2,
	OrderDelivered: 3,
}

// CanAdvanceTo reports whether moving from s to next is a forward move in
// the order lifecycle. Statuses only advance, never regress.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Phase is one production phase in the fixed grow cycle. AllPhases carries
// the canonical total order; never iterate phase maps without it.
type Phase string

const (
	PhaseSoak     Phase = "soak"
	PhaseSow      Phase = "sow"
	PhaseSpray    Phase = "spray"
	PhaseLightsOn Phase = "lights_on"
	PhaseWater    Phase = "water"
	PhaseHarvest  Phase = "harvest"
	PhaseDeliver  Phase = "deliver"
)

// AllPhases lists every phase in execution order:
// soak < sow < spray < lights_on < water < harvest < deliver.
var AllPhases = []Phase{
	PhaseSoak,
	PhaseSow,
	PhaseSpray,
	PhaseLightsOn,
	PhaseWater,
	PhaseHarvest,
	PhaseDeliver,
}

// TaskType returns the coarser task-type tag consumers filter on. Grow
// phases map 1:1; deliver maps to "delivery".
func (p Phase) TaskType() TaskType {
	if p == PhaseDeliver {
		return TaskTypeDelivery
	}
	return TaskType(p)
}

type TaskType string

const (
	TaskTypeSoak     TaskType = "soak"
	TaskTypeSow      TaskType = "sow"
	TaskTypeSpray    TaskType = "spray"
	TaskTypeLightsOn TaskType = "lights_on"
	TaskTypeWater    TaskType = "water"
	TaskTypeHarvest  TaskType = "harvest"
	TaskTypeDelivery TaskType = "delivery"
	TaskTypeGeneral  TaskType = "general"
)

type TaskStatus string

const (
	TaskPlanned TaskStatus = "planned"
	TaskDone    TaskStatus = "done"
)

// TaskSource distinguishes machine-generated task rows, which the
// synchronizer owns and replaces wholesale, from user-authored rows, which
// it must never touch.
type TaskSource string

const (
	SourceGenerated TaskSource = "generated"
	SourceUser      TaskSource = "user"
)

// TaskKind discriminates the two rows a non-empty (day, phase) bucket
// produces. Stored as a real column; the task title is derived display
// text, never parsed back.
type TaskKind string

const (
	KindSummary TaskKind = "summary"
	KindDetail  TaskKind = "detail"
)
