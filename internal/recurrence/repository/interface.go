package repository

import (
	"context"

	"recurring-task-management/internal/recurrence"
)

// Repository is the composed interface for the recurrence domain data store.
type Repository interface {
	SeriesRepository
	ItemRepository
}

// SeriesRepository defines all data access methods for RecurrenceSeries rows.
type SeriesRepository interface {
	InsertSeries(ctx context.Context, opt InsertSeriesOptions) (recurrence.Series, error)
	UpdateSeries(ctx context.Context, opt UpdateSeriesOptions) (recurrence.Series, error)
	GetOneSeries(ctx context.Context, opt GetOneSeriesOptions) (recurrence.Series, error)
	ListSeries(ctx context.Context, opt ListSeriesOptions) ([]recurrence.Series, int, error)

	// FindActiveSeriesDueBy returns the user's non-deleted, active series
	// with next_due_date on or before date.
	FindActiveSeriesDueBy(ctx context.Context, userID, date string) ([]recurrence.Series, error)

	// SoftDeleteSeries marks a series deleted; rows are never hard-deleted
	// so existing instances keep their back-reference.
	SoftDeleteSeries(ctx context.Context, id string) error
}

// ItemRepository defines all data access methods for item instance rows.
type ItemRepository interface {
	InsertInstance(ctx context.Context, opt InsertInstanceOptions) (recurrence.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (recurrence.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (recurrence.Item, error)

	// FindOutstandingInstance returns the open or in-progress instance of a
	// series, zero value when none exists.
	FindOutstandingInstance(ctx context.Context, seriesID string) (recurrence.Item, error)

	// FindInstanceByDueDate returns the instance of a series with the exact
	// due date, zero value when none exists.
	FindInstanceByDueDate(ctx context.Context, seriesID, date string) (recurrence.Item, error)

	// FindLegacyRecurringItems returns the user's non-deleted items that
	// still carry inline recurrence and no series back-reference.
	FindLegacyRecurringItems(ctx context.Context, userID string) ([]recurrence.Item, error)

	// ListItemsBySeries returns all instances generated from a series,
	// newest due date first.
	ListItemsBySeries(ctx context.Context, seriesID string) ([]recurrence.Item, error)

	// BulkReopenDueLegacyItems reopens done legacy recurring items whose
	// due date is on or before date. Returns the number of reopened rows.
	BulkReopenDueLegacyItems(ctx context.Context, userID, date string) (int64, error)
}
