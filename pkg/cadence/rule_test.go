package cadence_test

import (
	"testing"

	"recurring-task-management/pkg/cadence"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   cadence.Rule
		wantOK bool
	}{
		{
			name:   "Valid day rule",
			raw:    `{"interval":3,"unit":"day"}`,
			want:   cadence.Rule{Interval: 3, Unit: cadence.UnitDay},
			wantOK: true,
		},
		{
			name:   "Valid week rule",
			raw:    `{"interval":2,"unit":"week"}`,
			want:   cadence.Rule{Interval: 2, Unit: cadence.UnitWeek},
			wantOK: true,
		},
		{
			name:   "Max interval",
			raw:    `{"interval":365,"unit":"day"}`,
			want:   cadence.Rule{Interval: 365, Unit: cadence.UnitDay},
			wantOK: true,
		},
		{name: "Interval too large", raw: `{"interval":400,"unit":"day"}`},
		{name: "Interval zero", raw: `{"interval":0,"unit":"day"}`},
		{name: "Negative interval", raw: `{"interval":-1,"unit":"week"}`},
		{name: "Unknown unit", raw: `{"interval":2,"unit":"year"}`},
		{name: "Non-integer interval", raw: `{"interval":1.5,"unit":"day"}`},
		{name: "Not an object", raw: `"every 2 weeks"`},
		{name: "Empty string", raw: ""},
		{name: "Garbage", raw: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cadence.ParseRule(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseRule(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && *got != tt.want {
				t.Errorf("ParseRule(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRuleRoundTrip(t *testing.T) {
	rules := []cadence.Rule{
		{Interval: 1, Unit: cadence.UnitDay},
		{Interval: 2, Unit: cadence.UnitWeek},
		{Interval: 14, Unit: cadence.UnitDay},
		{Interval: 365, Unit: cadence.UnitDay},
		{Interval: 6, Unit: cadence.UnitMonth},
	}

	for _, r := range rules {
		got, ok := cadence.ParseRule(r.Serialize())
		if !ok {
			t.Fatalf("round trip failed to parse %q", r.Serialize())
		}
		if *got != r {
			t.Errorf("round trip %+v -> %q -> %+v", r, r.Serialize(), got)
		}
	}
}

func TestRuleFromParts(t *testing.T) {
	if _, ok := cadence.RuleFromParts(2, "week"); !ok {
		t.Errorf("RuleFromParts(2, week) rejected")
	}
	if _, ok := cadence.RuleFromParts(400, "day"); ok {
		t.Errorf("RuleFromParts(400, day) accepted")
	}
	if _, ok := cadence.RuleFromParts(1, "fortnight"); ok {
		t.Errorf("RuleFromParts(1, fortnight) accepted")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		kind cadence.Kind
		rule *cadence.Rule
		want string
	}{
		{cadence.KindDaily, nil, "Daily"},
		{cadence.KindWeekly, nil, "Weekly"},
		{cadence.KindMonthly, nil, "Monthly"},
		{cadence.KindCustom, &cadence.Rule{Interval: 2, Unit: cadence.UnitWeek}, "Every 2 weeks"},
		{cadence.KindCustom, &cadence.Rule{Interval: 1, Unit: cadence.UnitMonth}, "Every month"},
		{cadence.KindCustom, nil, "Custom"},
		{cadence.KindNone, nil, "Does not repeat"},
	}

	for _, tt := range tests {
		if got := cadence.Describe(tt.kind, tt.rule); got != tt.want {
			t.Errorf("Describe(%q, %+v) = %q, want %q", tt.kind, tt.rule, got, tt.want)
		}
	}
}
