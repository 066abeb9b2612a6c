package usecase

import (
	"context"

	"recurring-task-management/pkg/gcalendar"
)

// maxCatchUpIterations bounds the duplicate-on-schedule cursor walk per sync
// pass. A series neglected longer than this converges over successive passes
// instead of stalling the read that triggered the sync.
const maxCatchUpIterations = 500

// Preview and export limits.
const (
	defaultPreviewCount = 5
	maxPreviewCount     = 30

	defaultExportHorizonDays = 7
	maxExportHorizonDays     = 31
)

// CalendarClient is the slice of pkg/gcalendar used by calendar export.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, ev gcalendar.AllDayEvent) error
}
