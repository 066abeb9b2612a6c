package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/cadence"
)

// Rollover reopens done items that still carry legacy inline recurrence once
// their own due date has arrived again. Transitional support while
// unmigrated items exist; remove once the legacy representation is gone.
func (uc *implUseCase) Rollover(ctx context.Context, userID, today string) error {
	if !cadence.IsDate(today) {
		return recurrence.ErrInvalidDate
	}

	reopened, err := uc.repo.BulkReopenDueLegacyItems(ctx, userID, today)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rollover BulkReopenDueLegacyItems: %v", err)
		return err
	}
	if reopened > 0 {
		uc.l.Infof(ctx, "uc.Rollover: reopened %d legacy recurring items for user %s", reopened, userID)
	}
	return nil
}
