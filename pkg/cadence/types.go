package cadence

// DateLayout is the fixed wire format for calendar dates. Because it is
// zero-padded and fixed-width, lexicographic comparison of two date strings
// is equivalent to chronological comparison.
const DateLayout = "2006-01-02"

// Kind identifies the recurrence cadence of a series.
type Kind string

const (
	KindNone    Kind = "none"
	KindDaily   Kind = "daily"
	KindWeekly  Kind = "weekly"
	KindMonthly Kind = "monthly"
	KindCustom  Kind = "custom"
)

// IsRecurring reports whether the kind describes a repeating cadence.
func (k Kind) IsRecurring() bool {
	switch k {
	case KindDaily, KindWeekly, KindMonthly, KindCustom:
		return true
	}
	return false
}

// Unit is the step unit of a custom rule.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Interval bounds for custom rules.
const (
	MinInterval = 1
	MaxInterval = 365
)

// Rule is a custom fixed-interval recurrence rule: every Interval Units.
// Only meaningful when the series kind is KindCustom.
type Rule struct {
	Interval int  `json:"interval"`
	Unit     Unit `json:"unit"`
}

// Valid reports whether the rule is inside the accepted shape:
// integer interval in [MinInterval, MaxInterval] and a known unit.
func (r Rule) Valid() bool {
	if r.Interval < MinInterval || r.Interval > MaxInterval {
		return false
	}
	switch r.Unit {
	case UnitDay, UnitWeek, UnitMonth:
		return true
	}
	return false
}
