package usecase

import (
	"sync"

	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/cadence"
)

// userLocks serializes reconciliation passes per user within this process.
// The unique (series, due date) index remains the cross-process guard.
type userLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{m: make(map[string]*sync.Mutex)}
}

// acquire locks the per-user mutex and returns its unlock func.
func (ul *userLocks) acquire(userID string) func() {
	ul.mu.Lock()
	lock, ok := ul.m[userID]
	if !ok {
		lock = &sync.Mutex{}
		ul.m[userID] = lock
	}
	ul.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// validateRule checks the kind/rule pairing: a rule is required for custom
// kind and forbidden otherwise. Validation errors are surfaced, never
// silently corrected.
func validateRule(kind cadence.Kind, input *recurrence.RuleInput) (*cadence.Rule, error) {
	if kind == cadence.KindCustom {
		if input == nil {
			return nil, recurrence.ErrRuleRequired
		}
		rule, ok := cadence.RuleFromParts(input.Interval, input.Unit)
		if !ok {
			return nil, recurrence.ErrInvalidRule
		}
		return rule, nil
	}
	if input != nil {
		return nil, recurrence.ErrRuleNotAllowed
	}
	return nil, nil
}

// coalescePriority returns the input priority when set, else the fallback.
func coalescePriority(p, fallback recurrence.Priority) recurrence.Priority {
	if p != "" {
		return p
	}
	return fallback
}
