package recurrence

import "errors"

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrItemNotFound   = errors.New("item not found")

	ErrInvalidRule     = errors.New("invalid custom rule: interval must be 1-365 and unit one of day/week/month")
	ErrRuleRequired    = errors.New("custom kind requires a rule")
	ErrRuleNotAllowed  = errors.New("rule is only allowed for custom kind")
	ErrInvalidKind     = errors.New("invalid recurrence kind")
	ErrInvalidBehavior = errors.New("invalid behavior mode")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")

	ErrCalendarNotConfigured = errors.New("google calendar export is not configured")
)
