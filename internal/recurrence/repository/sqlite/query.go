package sqlite

import (
	"fmt"
	"strings"
	"time"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
)

// buildGetOneSeriesQuery builds WHERE clause + args for GetOneSeries.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneSeriesQuery(opt repo.GetOneSeriesOptions) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	return strings.Join(conditions, " AND "), args
}

// buildCountSeriesQuery builds WHERE clause + args for counting series.
func (r *implRepository) buildCountSeriesQuery(opt repo.ListSeriesOptions) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Active != nil {
		conditions = append(conditions, "active = ?")
		args = append(args, *opt.Active)
	}

	return strings.Join(conditions, " AND "), args
}

// buildListSeriesQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause
// for ListSeries.
func (r *implRepository) buildListSeriesQuery(opt repo.ListSeriesOptions) (string, []any) {
	mods, args := r.buildCountSeriesQuery(opt)
	parts := []string{"WHERE " + mods, "ORDER BY next_due_date ASC, created_at ASC"}

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildSeriesPatch builds the SET clause + args for UpdateSeries.
// Nil pointer fields are not touched; updated_at is always refreshed.
func (r *implRepository) buildSeriesPatch(opt repo.UpdateSeriesOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *opt.Priority)
	}
	if opt.Kind != nil {
		sets = append(sets, "kind = ?")
		args = append(args, *opt.Kind)
	}
	if opt.Behavior != nil {
		sets = append(sets, "behavior = ?")
		args = append(args, *opt.Behavior)
	}
	if opt.Rule != nil {
		sets = append(sets, "rule = ?")
		args = append(args, opt.Rule.Serialize())
	} else if opt.ClearRule {
		sets = append(sets, "rule = NULL")
	}
	if opt.NextDueDate != nil {
		sets = append(sets, "next_due_date = ?")
		args = append(args, *opt.NextDueDate)
	}
	if opt.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, *opt.Active)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	return strings.Join(sets, ", "), args
}

// buildItemPatch builds the SET clause + args for UpdateItem.
func (r *implRepository) buildItemPatch(opt repo.UpdateItemOptions) (string, []any) {
	var sets []string
	var args []any

	if opt.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *opt.Status)
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, nullStr(*opt.DueDate))
	}
	if opt.RecurrenceSeriesID != nil {
		sets = append(sets, "recurrence_series_id = ?")
		args = append(args, nullStr(*opt.RecurrenceSeriesID))
	}
	if opt.RecurrenceProcessedAt != nil {
		sets = append(sets, "recurrence_processed_at = ?")
		args = append(args, *opt.RecurrenceProcessedAt)
	}
	if opt.ClearLegacyRecurrence {
		sets = append(sets,
			"recurrence_kind = 'none'",
			fmt.Sprintf("recurrence_behavior = '%s'", recurrence.DefaultBehavior),
			"recurrence_rule = NULL",
		)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	return strings.Join(sets, ", "), args
}

// buildGetOneItemQuery builds WHERE clause + args for GetOneItem.
func (r *implRepository) buildGetOneItemQuery(opt repo.GetOneItemOptions) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	return strings.Join(conditions, " AND "), args
}
