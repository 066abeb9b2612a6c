package http

import (
	"recurring-task-management/internal/recurrence"
	pkgErrors "recurring-task-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500; the handler already logged the cause.
func (h *handler) mapError(err error) error {
	switch err {
	case recurrence.ErrSeriesNotFound:
		return pkgErrors.NewHTTPError(404, "series not found")
	case recurrence.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case recurrence.ErrInvalidRule,
		recurrence.ErrRuleRequired,
		recurrence.ErrRuleNotAllowed,
		recurrence.ErrInvalidKind,
		recurrence.ErrInvalidBehavior,
		recurrence.ErrInvalidPriority,
		recurrence.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, err.Error())
	case recurrence.ErrCalendarNotConfigured:
		return pkgErrors.NewHTTPError(503, "google calendar export is not configured")
	default:
		// Storage and other unexpected failures.
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
