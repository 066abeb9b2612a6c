package usecase

import (
	"context"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

// DetailSeries retrieves a single series with its generated instances.
// Returns ErrSeriesNotFound when not found or owned by another user.
func (uc *implUseCase) DetailSeries(ctx context.Context, userID, id string) (recurrence.DetailSeriesOutput, error) {
	series, err := uc.repo.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailSeries GetOneSeries: %v", err)
		return recurrence.DetailSeriesOutput{}, err
	}
	if series.ID == "" {
		return recurrence.DetailSeriesOutput{}, recurrence.ErrSeriesNotFound
	}

	instances, err := uc.repo.ListItemsBySeries(ctx, series.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailSeries ListItemsBySeries: %v", err)
		return recurrence.DetailSeriesOutput{}, err
	}

	return recurrence.DetailSeriesOutput{Series: series, Instances: instances}, nil
}

// UpdateSeries modifies an existing series. Partial update: empty fields keep
// their current value. The kind/rule pairing is re-validated against the
// effective result.
func (uc *implUseCase) UpdateSeries(ctx context.Context, input recurrence.UpdateSeriesInput) (recurrence.UpdateSeriesOutput, error) {
	existing, err := uc.repo.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSeries GetOneSeries: %v", err)
		return recurrence.UpdateSeriesOutput{}, err
	}
	if existing.ID == "" {
		return recurrence.UpdateSeriesOutput{}, recurrence.ErrSeriesNotFound
	}

	patch := repo.UpdateSeriesOptions{ID: existing.ID, Active: input.Active}

	if input.Title != "" {
		patch.Title = &input.Title
	}
	if input.Description != "" {
		patch.Description = &input.Description
	}
	if input.Priority != "" {
		if !input.Priority.Valid() {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrInvalidPriority
		}
		patch.Priority = &input.Priority
	}
	if input.Behavior != "" {
		if !input.Behavior.Valid() {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrInvalidBehavior
		}
		patch.Behavior = &input.Behavior
	}
	if input.NextDueDate != "" {
		if !cadence.IsDate(input.NextDueDate) {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrInvalidDate
		}
		patch.NextDueDate = &input.NextDueDate
	}

	// Effective kind after the patch decides whether a rule must, or must
	// not, be present.
	kind := existing.Kind
	if input.Kind != "" {
		if !input.Kind.IsRecurring() {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrInvalidKind
		}
		kind = input.Kind
		patch.Kind = &kind
	}

	switch {
	case input.Rule != nil:
		if kind != cadence.KindCustom {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrRuleNotAllowed
		}
		rule, ok := cadence.RuleFromParts(input.Rule.Interval, input.Rule.Unit)
		if !ok {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrInvalidRule
		}
		patch.Rule = rule
	case kind == cadence.KindCustom:
		if existing.Rule == nil {
			return recurrence.UpdateSeriesOutput{}, recurrence.ErrRuleRequired
		}
	default:
		// Kind moved away from custom: the stored rule no longer applies.
		patch.ClearRule = existing.Rule != nil
	}

	series, err := uc.repo.UpdateSeries(ctx, patch)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSeries UpdateSeries: %v", err)
		return recurrence.UpdateSeriesOutput{}, err
	}
	return recurrence.UpdateSeriesOutput{Series: series}, nil
}

// DeleteSeries soft-deletes a series. Returns ErrSeriesNotFound when not
// found. Existing instances keep their back-reference.
func (uc *implUseCase) DeleteSeries(ctx context.Context, userID, id string) error {
	existing, err := uc.repo.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSeries GetOneSeries: %v", err)
		return err
	}
	if existing.ID == "" {
		return recurrence.ErrSeriesNotFound
	}
	if err := uc.repo.SoftDeleteSeries(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSeries SoftDeleteSeries: %v", err)
		return err
	}
	return nil
}
