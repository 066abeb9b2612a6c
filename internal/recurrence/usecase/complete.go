package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// CompleteInstance marks an item done. When the item is the outstanding
// instance of an after-completion series, the series' next due date is
// recomputed here. This is the advance the reconciliation pass deliberately
// leaves to completion time.
func (uc *implUseCase) CompleteInstance(ctx context.Context, input recurrence.CompleteInstanceInput) (recurrence.CompleteInstanceOutput, error) {
	if !cadence.IsDate(input.Today) {
		return recurrence.CompleteInstanceOutput{}, recurrence.ErrInvalidDate
	}

	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteInstance GetOneItem: %v", err)
		return recurrence.CompleteInstanceOutput{}, err
	}
	if item.ID == "" {
		return recurrence.CompleteInstanceOutput{}, recurrence.ErrItemNotFound
	}
	if item.Status == recurrence.StatusDone {
		return recurrence.CompleteInstanceOutput{Item: item}, nil // already done
	}

	done := recurrence.StatusDone
	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{ID: item.ID, Status: &done})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteInstance UpdateItem: %v", err)
		return recurrence.CompleteInstanceOutput{}, err
	}

	out := recurrence.CompleteInstanceOutput{Item: updated}

	if item.RecurrenceSeriesID == "" {
		return out, nil
	}

	series, err := uc.repo.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: item.RecurrenceSeriesID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteInstance GetOneSeries: %v", err)
		return recurrence.CompleteInstanceOutput{}, err
	}
	if series.ID == "" || !series.Active || series.Behavior != recurrence.BehaviorAfterCompletion {
		return out, nil
	}

	// Schedule the next occurrence from whichever is later, the instance's
	// due date or today: completing early must not pull the cadence forward.
	anchor := input.Today
	if cadence.IsDate(item.DueDate) {
		anchor = cadence.MaxDate(item.DueDate, input.Today)
	}
	next, ok := cadence.NextOccurrence(anchor, series.Kind, series.Rule)
	if !ok {
		uc.l.Warnf(ctx, "uc.CompleteInstance series %s: rule yields no next occurrence, due date unchanged", series.ID)
		return out, nil
	}
	if next <= series.NextDueDate {
		// The due date never regresses.
		return out, nil
	}

	advanced, err := uc.repo.UpdateSeries(ctx, repo.UpdateSeriesOptions{ID: series.ID, NextDueDate: &next})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CompleteInstance UpdateSeries: %v", err)
		return recurrence.CompleteInstanceOutput{}, err
	}
	out.Series = &advanced
	return out, nil
}
