package middleware

import (
	"recurring-task-management/pkg/log"
)

type Middleware struct {
	l        log.Logger
	apiToken string
	throttle *syncThrottle
}

// New creates the middleware set. apiToken is the shared bearer token; an
// empty token disables the check (local development). syncRatePerMin bounds
// how often a single user may trigger reconciliation-bearing reads.
func New(l log.Logger, apiToken string, syncRatePerMin int) Middleware {
	return Middleware{
		l:        l,
		apiToken: apiToken,
		throttle: newSyncThrottle(syncRatePerMin),
	}
}
