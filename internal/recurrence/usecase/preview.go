package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// PreviewOccurrences returns the next N occurrence dates of a series,
// starting from its next due date (fast-forwarded past today when stale).
// Pure presentation support; nothing is materialized.
func (uc *implUseCase) PreviewOccurrences(ctx context.Context, input recurrence.PreviewOccurrencesInput) (recurrence.PreviewOccurrencesOutput, error) {
	if !cadence.IsDate(input.Today) {
		return recurrence.PreviewOccurrencesOutput{}, recurrence.ErrInvalidDate
	}

	series, err := uc.repo.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: input.SeriesID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PreviewOccurrences GetOneSeries: %v", err)
		return recurrence.PreviewOccurrencesOutput{}, err
	}
	if series.ID == "" {
		return recurrence.PreviewOccurrencesOutput{}, recurrence.ErrSeriesNotFound
	}

	count := input.Count
	if count <= 0 {
		count = defaultPreviewCount
	}
	if count > maxPreviewCount {
		count = maxPreviewCount
	}

	out := recurrence.PreviewOccurrencesOutput{
		SeriesID: series.ID,
		Cadence:  cadence.Describe(series.Kind, series.Rule),
	}

	first := series.NextDueDate
	if first < input.Today {
		fastForwarded, ok := cadence.NextOccurrenceOnOrAfter(series.NextDueDate, series.Kind, series.Rule, input.Today)
		if !ok {
			return out, nil // degenerate rule: no future dates to show
		}
		first = fastForwarded
	}

	dates := []string{first}
	cur := first
	for len(dates) < count {
		next, ok := cadence.NextOccurrence(cur, series.Kind, series.Rule)
		if !ok || next <= cur {
			break
		}
		dates = append(dates, next)
		cur = next
	}

	out.Dates = dates
	return out, nil
}
