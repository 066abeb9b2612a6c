package repository

import (
	"time"

	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/cadence"
)

// InsertSeriesOptions holds parameters for inserting a new series row.
type InsertSeriesOptions struct {
	UserID      string
	ProjectID   string
	Title       string
	Description string
	Priority    recurrence.Priority
	Kind        cadence.Kind
	Behavior    recurrence.Behavior
	Rule        *cadence.Rule
	NextDueDate string
	Active      bool
}

// UpdateSeriesOptions holds patch parameters for an existing series row.
// Nil pointer fields are left untouched.
type UpdateSeriesOptions struct {
	ID          string
	Title       *string
	Description *string
	Priority    *recurrence.Priority
	Kind        *cadence.Kind
	Behavior    *recurrence.Behavior
	Rule        *cadence.Rule
	ClearRule   bool
	NextDueDate *string
	Active      *bool
}

// GetOneSeriesOptions holds filter parameters for fetching a single series.
// All non-empty fields are applied as AND conditions.
type GetOneSeriesOptions struct {
	ID     string
	UserID string
}

// ListSeriesOptions holds filter and pagination parameters for listing series.
type ListSeriesOptions struct {
	UserID string
	Active *bool
	Limit  int
	Offset int
}

// InsertInstanceOptions holds parameters for materializing an item instance.
type InsertInstanceOptions struct {
	UserID             string
	ProjectID          string
	Title              string
	Description        string
	Priority           recurrence.Priority
	DueDate            string
	Status             recurrence.Status
	RecurrenceSeriesID string
}

// UpdateItemOptions holds patch parameters for an existing item row.
// Nil pointer fields are left untouched.
type UpdateItemOptions struct {
	ID                    string
	Status                *recurrence.Status
	DueDate               *string
	RecurrenceSeriesID    *string
	RecurrenceProcessedAt *time.Time

	// ClearLegacyRecurrence resets the inline recurrence fields to their
	// non-recurring defaults (kind none, default behavior, no rule).
	ClearLegacyRecurrence bool
}

// GetOneItemOptions holds filter parameters for fetching a single item.
type GetOneItemOptions struct {
	ID     string
	UserID string
}
