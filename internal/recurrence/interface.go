package recurrence

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sync is the reconciliation entry point: legacy migration followed by
	// catch-up materialization of every due active series. Expected to be
	// called before any read of the user's series or recurring items.
	// Today is the caller-supplied current date (YYYY-MM-DD).
	Sync(ctx context.Context, userID, today string) error

	// Rollover reopens done legacy recurring items whose due date has
	// arrived again. Transitional; independent of the series model.
	Rollover(ctx context.Context, userID, today string) error

	// Series CRUD
	CreateSeries(ctx context.Context, input CreateSeriesInput) (CreateSeriesOutput, error)
	ListSeries(ctx context.Context, input ListSeriesInput) (ListSeriesOutput, error)
	DetailSeries(ctx context.Context, userID, id string) (DetailSeriesOutput, error)
	UpdateSeries(ctx context.Context, input UpdateSeriesInput) (UpdateSeriesOutput, error)
	DeleteSeries(ctx context.Context, userID, id string) error

	// CompleteInstance marks an item done and, for after-completion series,
	// advances the owning series' next due date.
	CompleteInstance(ctx context.Context, input CompleteInstanceInput) (CompleteInstanceOutput, error)

	// PreviewOccurrences returns the next N occurrence dates of a series.
	PreviewOccurrences(ctx context.Context, input PreviewOccurrencesInput) (PreviewOccurrencesOutput, error)

	// ExportUpcoming pushes upcoming occurrences inside the horizon to the
	// configured Google Calendar.
	ExportUpcoming(ctx context.Context, input ExportUpcomingInput) (ExportUpcomingOutput, error)
}
