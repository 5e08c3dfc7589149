package domain

import "time"

// Task is one row on the task board / calendar.
//
// Generated tasks (Source == SourceGenerated) are fully owned by the
// synchronizer: Kind, Phase and GeneratorKey are set, and the row is wiped
// and recreated whenever its due date falls inside a synced window. The
// title is derived display text; consumers read the structured Kind/Phase
// columns and must never parse the title back.
//
// User tasks (Source == SourceUser) are authored by hand, may reference an
// order via OrderID, and are invisible to synchronization.
type Task struct {
	ID           string
	Title        string
	DueDate      Day
	Status       TaskStatus
	Type         TaskType
	Source       TaskSource
	Phase        Phase    // empty for user tasks
	Kind         TaskKind // empty for user tasks
	GeneratorKey string   // empty for user tasks
	OrderID      string   // optional link for user tasks; cascades on order delete
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsGenerated reports whether the synchronizer owns this row.
func (t *Task) IsGenerated() bool {
	return t.Source == SourceGenerated
}
