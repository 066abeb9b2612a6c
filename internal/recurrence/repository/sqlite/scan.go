package sqlite

import (
	"database/sql"

	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/cadence"
)

const seriesColumns = `id, user_id, project_id, title, description, priority, kind, behavior,
	rule, next_due_date, active, deleted_at, created_at, updated_at`

const itemColumns = `id, user_id, project_id, title, description, priority, due_date, status,
	recurrence_series_id, recurrence_kind, recurrence_behavior, recurrence_rule,
	recurrence_processed_at, deleted_at, created_at, updated_at`

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (recurrence.Series, error) {
	var s recurrence.Series
	var projectID, rule sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&s.ID, &s.UserID, &projectID, &s.Title, &s.Description, &s.Priority,
		&s.Kind, &s.Behavior, &rule, &s.NextDueDate, &s.Active,
		&deletedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return recurrence.Series{}, err
	}

	s.ProjectID = projectID.String
	if rule.Valid {
		// A stored rule that no longer parses is surfaced as nil; the
		// engine treats it as degenerate per series.
		if parsed, ok := cadence.ParseRule(rule.String); ok {
			s.Rule = parsed
		}
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		s.DeletedAt = &t
	}
	return s, nil
}

func scanItem(row rowScanner) (recurrence.Item, error) {
	var i recurrence.Item
	var projectID, dueDate, seriesID, rule sql.NullString
	var processedAt, deletedAt sql.NullTime

	err := row.Scan(
		&i.ID, &i.UserID, &projectID, &i.Title, &i.Description, &i.Priority,
		&dueDate, &i.Status, &seriesID, &i.RecurrenceKind, &i.RecurrenceBehavior,
		&rule, &processedAt, &deletedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return recurrence.Item{}, err
	}

	i.ProjectID = projectID.String
	i.DueDate = dueDate.String
	i.RecurrenceSeriesID = seriesID.String
	if rule.Valid {
		if parsed, ok := cadence.ParseRule(rule.String); ok {
			i.RecurrenceRule = parsed
		}
	}
	if processedAt.Valid {
		t := processedAt.Time
		i.RecurrenceProcessedAt = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		i.DeletedAt = &t
	}
	return i, nil
}

// nullStr maps an empty string to SQL NULL. Required for columns under the
// partial unique index; empty strings would collide where NULLs do not.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullRule maps a nil rule to SQL NULL and a rule to its canonical encoding.
func nullRule(r *cadence.Rule) any {
	if r == nil {
		return nil
	}
	return r.Serialize()
}
