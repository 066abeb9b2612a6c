package recurrence

import (
	"time"

	"recurring-task-management/pkg/cadence"
)

// --- Domain enums ---

// Behavior controls how a series advances.
type Behavior string

const (
	// BehaviorAfterCompletion waits for the outstanding instance to be
	// completed before a new one is scheduled.
	BehaviorAfterCompletion Behavior = "after_completion"
	// BehaviorDuplicateOnSchedule materializes an instance for every
	// scheduled date regardless of completion.
	BehaviorDuplicateOnSchedule Behavior = "duplicate_on_schedule"
)

// DefaultBehavior is applied when none is specified.
const DefaultBehavior = BehaviorAfterCompletion

// Valid reports whether b is a known behavior.
func (b Behavior) Valid() bool {
	return b == BehaviorAfterCompletion || b == BehaviorDuplicateOnSchedule
}

// Priority of a series or item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Status is the completion state of an item instance.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Outstanding reports whether the item still needs work.
func (s Status) Outstanding() bool {
	return s == StatusOpen || s == StatusInProgress
}

// --- Domain entities ---

// Series is the durable definition of a repeating obligation. It owns the
// item instances it generates, linked back via Item.RecurrenceSeriesID.
type Series struct {
	ID          string
	UserID      string
	ProjectID   string // empty = no project
	Title       string
	Description string
	Priority    Priority
	Kind        cadence.Kind
	Behavior    Behavior
	Rule        *cadence.Rule // non-nil iff Kind == cadence.KindCustom
	NextDueDate string        // cadence.DateLayout
	Active      bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a concrete work item. Instances generated from a series carry
// RecurrenceSeriesID; items that predate the series model may still carry the
// legacy inline recurrence fields until migration lifts them into a Series.
type Item struct {
	ID          string
	UserID      string
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	DueDate     string // empty = no due date
	Status      Status

	RecurrenceSeriesID string // empty = not a generated instance

	// Legacy inline recurrence, kept until migration.
	RecurrenceKind        cadence.Kind
	RecurrenceBehavior    Behavior
	RecurrenceRule        *cadence.Rule
	RecurrenceProcessedAt *time.Time

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLegacyRecurring reports whether the item still carries an unmigrated
// inline recurrence definition.
func (i Item) IsLegacyRecurring() bool {
	return i.RecurrenceSeriesID == "" && i.RecurrenceKind.IsRecurring()
}

// --- UseCase inputs ---

// RuleInput is the wire shape of a custom rule on create/update.
type RuleInput struct {
	Interval int
	Unit     string
}

type CreateSeriesInput struct {
	UserID      string
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	Kind        cadence.Kind
	Behavior    Behavior
	Rule        *RuleInput
	NextDueDate string
}

type ListSeriesInput struct {
	UserID string
	Active *bool
	Limit  int
	Offset int
}

type UpdateSeriesInput struct {
	UserID      string
	ID          string
	Title       string
	Description string
	Priority    Priority
	Kind        cadence.Kind
	Behavior    Behavior
	Rule        *RuleInput
	NextDueDate string
	Active      *bool
}

type CompleteInstanceInput struct {
	UserID string
	ItemID string
	Today  string
}

type PreviewOccurrencesInput struct {
	UserID   string
	SeriesID string
	Count    int
	Today    string
}

type ExportUpcomingInput struct {
	UserID      string
	Today       string
	HorizonDays int
}

// --- UseCase outputs ---

type CreateSeriesOutput struct {
	Series Series
}

type ListSeriesOutput struct {
	Series []Series
	Total  int
	Limit  int
	Offset int
}

type DetailSeriesOutput struct {
	Series    Series
	Instances []Item
}

type UpdateSeriesOutput struct {
	Series Series
}

type CompleteInstanceOutput struct {
	Item Item
	// Series is set when completing the item advanced an
	// after-completion series.
	Series *Series
}

type PreviewOccurrencesOutput struct {
	SeriesID string
	Cadence  string
	Dates    []string
}

type ExportUpcomingOutput struct {
	Exported int
}
