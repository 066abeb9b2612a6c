package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
)

// ListSeries returns a paginated list of the user's series. Callers that
// read recurring state are expected to Sync first (the delivery layer does).
func (uc *implUseCase) ListSeries(ctx context.Context, input recurrence.ListSeriesInput) (recurrence.ListSeriesOutput, error) {
	series, total, err := uc.repo.ListSeries(ctx, repo.ListSeriesOptions{
		UserID: input.UserID,
		Active: input.Active,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSeries ListSeries: %v", err)
		return recurrence.ListSeriesOutput{}, err
	}

	return recurrence.ListSeriesOutput{
		Series: series,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
