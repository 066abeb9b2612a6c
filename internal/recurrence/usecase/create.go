package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// CreateSeries creates a new series after validating the recurrence shape.
// Validation failures are surfaced to the caller, never silently corrected.
func (uc *implUseCase) CreateSeries(ctx context.Context, input recurrence.CreateSeriesInput) (recurrence.CreateSeriesOutput, error) {
	if !input.Kind.IsRecurring() {
		return recurrence.CreateSeriesOutput{}, recurrence.ErrInvalidKind
	}

	behavior := input.Behavior
	if behavior == "" {
		behavior = recurrence.DefaultBehavior
	}
	if !behavior.Valid() {
		return recurrence.CreateSeriesOutput{}, recurrence.ErrInvalidBehavior
	}

	priority := coalescePriority(input.Priority, recurrence.PriorityMedium)
	if !priority.Valid() {
		return recurrence.CreateSeriesOutput{}, recurrence.ErrInvalidPriority
	}

	rule, err := validateRule(input.Kind, input.Rule)
	if err != nil {
		return recurrence.CreateSeriesOutput{}, err
	}

	if !cadence.IsDate(input.NextDueDate) {
		return recurrence.CreateSeriesOutput{}, recurrence.ErrInvalidDate
	}

	series, err := uc.repo.InsertSeries(ctx, repo.InsertSeriesOptions{
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Kind:        input.Kind,
		Behavior:    behavior,
		Rule:        rule,
		NextDueDate: input.NextDueDate,
		Active:      true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSeries InsertSeries: %v", err)
		return recurrence.CreateSeriesOutput{}, err
	}

	return recurrence.CreateSeriesOutput{Series: series}, nil
}
