package usecase

import (
	"context"
	"time"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// migrateLegacy lifts the user's items that still carry inline recurrence
// into series records, exactly once per item. Candidacy excludes items that
// already reference a series, which makes the step naturally idempotent and
// safe to run at the head of every sync pass.
func (uc *implUseCase) migrateLegacy(ctx context.Context, userID, today string) error {
	items, err := uc.repo.FindLegacyRecurringItems(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		// Anchor on the item's own due date when it is a valid calendar
		// date, else on today.
		dueAnchor := today
		if cadence.IsDate(item.DueDate) {
			dueAnchor = item.DueDate
		}

		wasDone := item.Status == recurrence.StatusDone

		// An open item already represents its next occurrence, so the series
		// inherits the due date as-is and no instance is created for it. A
		// done item schedules the occurrence after max(due, today).
		nextDueDate := dueAnchor
		if wasDone {
			completionAnchor := cadence.MaxDate(dueAnchor, today)
			if next, ok := cadence.NextOccurrence(completionAnchor, item.RecurrenceKind, item.RecurrenceRule); ok {
				nextDueDate = next
			} else {
				nextDueDate = completionAnchor
			}
		}

		behavior := item.RecurrenceBehavior
		if !behavior.Valid() {
			behavior = recurrence.DefaultBehavior
		}

		series, err := uc.repo.InsertSeries(ctx, repo.InsertSeriesOptions{
			UserID:      item.UserID,
			ProjectID:   item.ProjectID,
			Title:       item.Title,
			Description: item.Description,
			Priority:    coalescePriority(item.Priority, recurrence.PriorityMedium),
			Kind:        item.RecurrenceKind,
			Behavior:    behavior,
			Rule:        item.RecurrenceRule,
			NextDueDate: nextDueDate,
			Active:      true,
		})
		if err != nil {
			return err
		}

		// Rewrite the source item into a plain instance of the new series.
		// The processed-at marker on done items keeps the rollover pass from
		// ever touching them again.
		patch := repo.UpdateItemOptions{
			ID:                    item.ID,
			RecurrenceSeriesID:    &series.ID,
			ClearLegacyRecurrence: true,
		}
		if wasDone {
			now := time.Now().UTC()
			patch.RecurrenceProcessedAt = &now
		}
		if _, err := uc.repo.UpdateItem(ctx, patch); err != nil {
			return err
		}

		uc.l.Infof(ctx, "uc.migrateLegacy: item %s migrated to series %s (next due %s)", item.ID, series.ID, nextDueDate)
	}
	return nil
}
