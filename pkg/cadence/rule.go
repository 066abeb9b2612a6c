package cadence

import (
	"encoding/json"
	"fmt"
)

// ParseRule decodes a serialized custom rule. It accepts only the canonical
// JSON object shape {"interval": N, "unit": "day|week|month"} with N in
// [MinInterval, MaxInterval]. Any other input yields (nil, false); callers
// decide whether a missing rule is fatal.
func ParseRule(raw string) (*Rule, bool) {
	if raw == "" {
		return nil, false
	}
	var r Rule
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, false
	}
	if !r.Valid() {
		return nil, false
	}
	return &r, true
}

// RuleFromParts builds a validated rule from its components.
// Returns (nil, false) for out-of-range intervals or unknown units.
func RuleFromParts(interval int, unit string) (*Rule, bool) {
	r := Rule{Interval: interval, Unit: Unit(unit)}
	if !r.Valid() {
		return nil, false
	}
	return &r, true
}

// Serialize returns the canonical encoding of the rule, the inverse of
// ParseRule. Field order is stable so equal rules serialize identically.
func (r Rule) Serialize() string {
	return fmt.Sprintf(`{"interval":%d,"unit":%q}`, r.Interval, r.Unit)
}

// Describe returns a human-readable cadence label, e.g. "Every 2 weeks".
// Intended for presentation layers only.
func Describe(kind Kind, rule *Rule) string {
	switch kind {
	case KindDaily:
		return "Daily"
	case KindWeekly:
		return "Weekly"
	case KindMonthly:
		return "Monthly"
	case KindCustom:
		if rule == nil || !rule.Valid() {
			return "Custom"
		}
		if rule.Interval == 1 {
			return fmt.Sprintf("Every %s", rule.Unit)
		}
		return fmt.Sprintf("Every %d %ss", rule.Interval, rule.Unit)
	}
	return "Does not repeat"
}
