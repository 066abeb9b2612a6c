package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
)

// InsertInstance materializes one item instance row. A violation of the
// unique (series, due date) index is reported as ErrDuplicateInstance so the
// engine can treat the row as already materialized.
func (r *implRepository) InsertInstance(ctx context.Context, opt repo.InsertInstanceOptions) (recurrence.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO task_items (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'none', ?, NULL, NULL, NULL, ?, ?)
		RETURNING %s`, itemColumns, itemColumns)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, nullStr(opt.ProjectID), opt.Title, opt.Description,
		opt.Priority, nullStr(opt.DueDate), opt.Status, nullStr(opt.RecurrenceSeriesID),
		recurrence.DefaultBehavior, now, now,
	)

	item, err := scanItem(row)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return recurrence.Item{}, repo.ErrDuplicateInstance
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertInstance"), err)
		return recurrence.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// UpdateItem applies the non-nil patch fields and returns the updated entity.
// Returns zero-value Item when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (recurrence.Item, error) {
	set, args := r.buildItemPatch(opt)
	query := fmt.Sprintf(`UPDATE task_items SET %s WHERE id = ? RETURNING %s`, set, itemColumns)
	args = append(args, opt.ID)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return recurrence.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return recurrence.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// GetOneItem retrieves a single non-deleted item by the provided filters
// (AND condition). Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (recurrence.Item, error) {
	mods, args := r.buildGetOneItemQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM task_items WHERE %s LIMIT 1`, itemColumns, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return recurrence.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return recurrence.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// FindOutstandingInstance returns the series' open or in-progress instance,
// zero value when the series has none outstanding.
func (r *implRepository) FindOutstandingInstance(ctx context.Context, seriesID string) (recurrence.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM task_items
		WHERE recurrence_series_id = ? AND deleted_at IS NULL
			AND status IN ('open', 'in_progress')
		ORDER BY due_date ASC
		LIMIT 1`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, seriesID))
	if err == sql.ErrNoRows {
		return recurrence.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindOutstandingInstance"), err)
		return recurrence.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// FindInstanceByDueDate returns the series' instance with the exact due date,
// zero value when none exists. This is the engine's idempotency probe.
func (r *implRepository) FindInstanceByDueDate(ctx context.Context, seriesID, date string) (recurrence.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM task_items
		WHERE recurrence_series_id = ? AND due_date = ? AND deleted_at IS NULL
		LIMIT 1`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, seriesID, date))
	if err == sql.ErrNoRows {
		return recurrence.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindInstanceByDueDate"), err)
		return recurrence.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// FindLegacyRecurringItems returns the user's non-deleted items that carry
// inline recurrence and no series back-reference: the migration candidates.
func (r *implRepository) FindLegacyRecurringItems(ctx context.Context, userID string) ([]recurrence.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM task_items
		WHERE user_id = ? AND deleted_at IS NULL
			AND recurrence_series_id IS NULL
			AND recurrence_kind != 'none'
		ORDER BY created_at ASC`, itemColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindLegacyRecurringItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []recurrence.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, item)
	}
	return out, nil
}

// ListItemsBySeries returns all instances generated from a series, newest
// due date first.
func (r *implRepository) ListItemsBySeries(ctx context.Context, seriesID string) ([]recurrence.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM task_items
		WHERE recurrence_series_id = ? AND deleted_at IS NULL
		ORDER BY due_date DESC`, itemColumns)

	rows, err := r.db.QueryContext(ctx, query, seriesID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItemsBySeries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []recurrence.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, item)
	}
	return out, nil
}

// BulkReopenDueLegacyItems reopens done, unmigrated legacy recurring items
// whose own due date has arrived again. Pure bulk update, no row creation.
func (r *implRepository) BulkReopenDueLegacyItems(ctx context.Context, userID, date string) (int64, error) {
	const query = `
		UPDATE task_items
		SET status = 'open', updated_at = ?
		WHERE user_id = ? AND deleted_at IS NULL
			AND status = 'done'
			AND recurrence_series_id IS NULL
			AND recurrence_kind != 'none'
			AND recurrence_processed_at IS NULL
			AND due_date IS NOT NULL AND due_date <= ?`

	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), userID, date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BulkReopenDueLegacyItems"), err)
		return 0, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("BulkReopenDueLegacyItems"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return affected, nil
}
