package usecase

import (
	"recurring-task-management/internal/recurrence"
	"recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/log"
)

// implUseCase is the private implementation of recurrence.UseCase.
type implUseCase struct {
	repo     repository.Repository
	calendar CalendarClient // nil when calendar export is not configured
	l        log.Logger
	locks    *userLocks
}

// New creates a new recurrence UseCase implementation. calendar may be nil;
// ExportUpcoming then reports ErrCalendarNotConfigured.
func New(repo repository.Repository, calendar CalendarClient, l log.Logger) recurrence.UseCase {
	return &implUseCase{
		repo:     repo,
		calendar: calendar,
		l:        l,
		locks:    newUserLocks(),
	}
}
