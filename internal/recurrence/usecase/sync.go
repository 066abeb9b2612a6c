package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// Sync reconciles the user's materialized instances with their series
// schedules. It runs lazily, inline with whatever read triggered it: legacy
// migration first (it can introduce series the catch-up must immediately
// consider), then catch-up for every active series whose next due date has
// arrived. Every materialization decision re-checks current state before
// writing, so an aborted pass is safe to re-run.
func (uc *implUseCase) Sync(ctx context.Context, userID, today string) error {
	if !cadence.IsDate(today) {
		return recurrence.ErrInvalidDate
	}

	unlock := uc.locks.acquire(userID)
	defer unlock()

	if err := uc.migrateLegacy(ctx, userID, today); err != nil {
		uc.l.Errorf(ctx, "uc.Sync migrateLegacy: %v", err)
		return err
	}

	due, err := uc.repo.FindActiveSeriesDueBy(ctx, userID, today)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sync FindActiveSeriesDueBy: %v", err)
		return err
	}

	for _, series := range due {
		if err := uc.reconcileSeries(ctx, series, today); err != nil {
			uc.l.Errorf(ctx, "uc.Sync series %s: %v", series.ID, err)
			return err
		}
	}
	return nil
}

func (uc *implUseCase) reconcileSeries(ctx context.Context, series recurrence.Series, today string) error {
	switch series.Behavior {
	case recurrence.BehaviorAfterCompletion:
		return uc.reconcileAfterCompletion(ctx, series)
	case recurrence.BehaviorDuplicateOnSchedule:
		return uc.reconcileDuplicateOnSchedule(ctx, series, today)
	}
	uc.l.Warnf(ctx, "uc.reconcileSeries %s: unknown behavior %q, skipping", series.ID, series.Behavior)
	return nil
}

// reconcileAfterCompletion materializes at most one open instance. While an
// outstanding instance exists the series waits; its next due date advances
// only when that instance is completed (see CompleteInstance).
func (uc *implUseCase) reconcileAfterCompletion(ctx context.Context, series recurrence.Series) error {
	outstanding, err := uc.repo.FindOutstandingInstance(ctx, series.ID)
	if err != nil {
		return err
	}
	if outstanding.ID != "" {
		return nil // waiting for the user to finish it
	}

	existing, err := uc.repo.FindInstanceByDueDate(ctx, series.ID, series.NextDueDate)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return nil // already materialized on an earlier pass
	}

	return uc.materialize(ctx, series, series.NextDueDate)
}

// reconcileDuplicateOnSchedule walks a cursor from the series' next due date
// up to today, materializing every missed occurrence, then persists the
// advanced cursor. The iteration bound keeps a pathologically stale series
// from stalling the request that triggered the pass.
func (uc *implUseCase) reconcileDuplicateOnSchedule(ctx context.Context, series recurrence.Series, today string) error {
	cursor := series.NextDueDate

	for i := 0; i < maxCatchUpIterations && cursor <= today; i++ {
		existing, err := uc.repo.FindInstanceByDueDate(ctx, series.ID, cursor)
		if err != nil {
			return err
		}
		if existing.ID == "" {
			if err := uc.materialize(ctx, series, cursor); err != nil {
				return err
			}
		}

		next, ok := cadence.NextOccurrence(cursor, series.Kind, series.Rule)
		if !ok || next <= cursor {
			// Malformed or zero-progress rule: recoverable no-op for this
			// series, the rest of the pass continues.
			uc.l.Warnf(ctx, "uc.reconcileDuplicateOnSchedule %s: rule does not advance from %s, aborting catch-up", series.ID, cursor)
			break
		}
		cursor = next
	}

	// The cursor only ever moves forward; persist it when it did.
	if cursor > series.NextDueDate {
		if _, err := uc.repo.UpdateSeries(ctx, repo.UpdateSeriesOptions{
			ID:          series.ID,
			NextDueDate: &cursor,
		}); err != nil {
			return err
		}
	}
	return nil
}

// materialize creates one open instance for the series at dueDate. A
// duplicate-instance rejection from the store means a concurrent pass got
// there first and is treated as success.
func (uc *implUseCase) materialize(ctx context.Context, series recurrence.Series, dueDate string) error {
	_, err := uc.repo.InsertInstance(ctx, repo.InsertInstanceOptions{
		UserID:             series.UserID,
		ProjectID:          series.ProjectID,
		Title:              series.Title,
		Description:        series.Description,
		Priority:           series.Priority,
		DueDate:            dueDate,
		Status:             recurrence.StatusOpen,
		RecurrenceSeriesID: series.ID,
	})
	if err == repo.ErrDuplicateInstance {
		uc.l.Debugf(ctx, "uc.materialize %s@%s: already materialized concurrently", series.ID, dueDate)
		return nil
	}
	return err
}
