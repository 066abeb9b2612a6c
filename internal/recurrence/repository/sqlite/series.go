package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
)

// InsertSeries inserts a new series row and returns the created entity.
func (r *implRepository) InsertSeries(ctx context.Context, opt repo.InsertSeriesOptions) (recurrence.Series, error) {
	query := fmt.Sprintf(`
		INSERT INTO recurrence_series (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)
		RETURNING %s`, seriesColumns, seriesColumns)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, nullStr(opt.ProjectID), opt.Title, opt.Description,
		opt.Priority, opt.Kind, opt.Behavior, nullRule(opt.Rule), opt.NextDueDate,
		opt.Active, now, now,
	)

	series, err := scanSeries(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertSeries"), err)
		return recurrence.Series{}, repo.ErrFailedToInsert
	}
	return series, nil
}

// UpdateSeries applies the non-nil patch fields and returns the updated
// entity. Returns zero-value Series when the row does not exist.
func (r *implRepository) UpdateSeries(ctx context.Context, opt repo.UpdateSeriesOptions) (recurrence.Series, error) {
	set, args := r.buildSeriesPatch(opt)
	query := fmt.Sprintf(`UPDATE recurrence_series SET %s WHERE id = ? RETURNING %s`, set, seriesColumns)
	args = append(args, opt.ID)

	series, err := scanSeries(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return recurrence.Series{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSeries"), err)
		return recurrence.Series{}, repo.ErrFailedToUpdate
	}
	return series, nil
}

// GetOneSeries retrieves a single non-deleted series by the provided filters
// (AND condition). Returns zero-value Series (ID == "") when not found.
func (r *implRepository) GetOneSeries(ctx context.Context, opt repo.GetOneSeriesOptions) (recurrence.Series, error) {
	mods, args := r.buildGetOneSeriesQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM recurrence_series WHERE %s LIMIT 1`, seriesColumns, mods)

	series, err := scanSeries(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return recurrence.Series{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSeries"), err)
		return recurrence.Series{}, repo.ErrFailedToGet
	}
	return series, nil
}

// ListSeries returns a paginated list of the user's series and the total count.
func (r *implRepository) ListSeries(ctx context.Context, opt repo.ListSeriesOptions) ([]recurrence.Series, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountSeriesQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM recurrence_series WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListSeries"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListSeriesQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM recurrence_series %s`, seriesColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSeries"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []recurrence.Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		out = append(out, series)
	}
	return out, total, nil
}

// FindActiveSeriesDueBy returns the user's non-deleted, active series whose
// next due date has arrived (next_due_date <= date).
func (r *implRepository) FindActiveSeriesDueBy(ctx context.Context, userID, date string) ([]recurrence.Series, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM recurrence_series
		WHERE user_id = ? AND active = 1 AND deleted_at IS NULL AND next_due_date <= ?
		ORDER BY next_due_date ASC`, seriesColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindActiveSeriesDueBy"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []recurrence.Series
	for rows.Next() {
		series, err := scanSeries(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, series)
	}
	return out, nil
}

// SoftDeleteSeries marks a series deleted. The row stays so that generated
// instances keep a resolvable back-reference.
func (r *implRepository) SoftDeleteSeries(ctx context.Context, id string) error {
	const query = `
		UPDATE recurrence_series
		SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query, now, now, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SoftDeleteSeries"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
