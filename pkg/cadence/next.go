package cadence

import "time"

// NextOccurrence computes the occurrence date that follows anchor for the
// given cadence. Daily adds one day, weekly seven, monthly one calendar month
// clamped to the last valid day of the target month (Jan 31 → Feb 28/29),
// and custom adds rule.Interval units with the same month clamping.
//
// The boolean is false when the anchor is not a valid DateLayout date, or
// when kind is custom and the rule is missing or malformed.
func NextOccurrence(anchor string, kind Kind, rule *Rule) (string, bool) {
	t, err := time.Parse(DateLayout, anchor)
	if err != nil {
		return "", false
	}

	switch kind {
	case KindDaily:
		return t.AddDate(0, 0, 1).Format(DateLayout), true
	case KindWeekly:
		return t.AddDate(0, 0, 7).Format(DateLayout), true
	case KindMonthly:
		return addMonthsClamped(t, 1).Format(DateLayout), true
	case KindCustom:
		if rule == nil || !rule.Valid() {
			return "", false
		}
		switch rule.Unit {
		case UnitDay:
			return t.AddDate(0, 0, rule.Interval).Format(DateLayout), true
		case UnitWeek:
			return t.AddDate(0, 0, rule.Interval*7).Format(DateLayout), true
		case UnitMonth:
			return addMonthsClamped(t, rule.Interval).Format(DateLayout), true
		}
	}
	return "", false
}

// NextOccurrenceOnOrAfter applies NextOccurrence repeatedly starting from
// anchor until the result is on or after floor. Used for previews and
// descriptions; the reconciliation loop iterates NextOccurrence directly.
func NextOccurrenceOnOrAfter(anchor string, kind Kind, rule *Rule, floor string) (string, bool) {
	cur := anchor
	for {
		next, ok := NextOccurrence(cur, kind, rule)
		if !ok || next <= cur {
			return "", false
		}
		if next >= floor {
			return next, true
		}
		cur = next
	}
}

// IsDate reports whether s is a valid DateLayout calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// MaxDate returns the later of two DateLayout dates. Lexicographic order is
// chronological order for this format.
func MaxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

// addMonthsClamped adds months to t, clamping the day-of-month to the last
// valid day of the target month. time.AddDate would normalize Jan 31 + 1month
// into Mar 2/3 instead; a monthly step must never skip a month.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}
