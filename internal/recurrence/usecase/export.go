package usecase

import (
	"context"
	"time"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
	"recurring-task-management/pkg/gcalendar"
)

// ExportUpcoming pushes every occurrence of the user's active series that
// falls inside the horizon to the configured Google Calendar as an all-day
// event. User-invoked export, not a notification channel.
func (uc *implUseCase) ExportUpcoming(ctx context.Context, input recurrence.ExportUpcomingInput) (recurrence.ExportUpcomingOutput, error) {
	if uc.calendar == nil {
		return recurrence.ExportUpcomingOutput{}, recurrence.ErrCalendarNotConfigured
	}
	if !cadence.IsDate(input.Today) {
		return recurrence.ExportUpcomingOutput{}, recurrence.ErrInvalidDate
	}

	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = defaultExportHorizonDays
	}
	if horizon > maxExportHorizonDays {
		horizon = maxExportHorizonDays
	}
	today, _ := time.Parse(cadence.DateLayout, input.Today)
	until := today.AddDate(0, 0, horizon).Format(cadence.DateLayout)

	active := true
	series, _, err := uc.repo.ListSeries(ctx, repo.ListSeriesOptions{UserID: input.UserID, Active: &active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportUpcoming ListSeries: %v", err)
		return recurrence.ExportUpcomingOutput{}, err
	}

	exported := 0
	for _, s := range series {
		date := s.NextDueDate
		if date < input.Today {
			fastForwarded, ok := cadence.NextOccurrenceOnOrAfter(date, s.Kind, s.Rule, input.Today)
			if !ok {
				continue
			}
			date = fastForwarded
		}

		for date <= until {
			err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEvent{
				Summary:     s.Title,
				Description: cadence.Describe(s.Kind, s.Rule),
				Date:        date,
			})
			if err != nil {
				uc.l.Errorf(ctx, "uc.ExportUpcoming CreateAllDayEvent series %s: %v", s.ID, err)
				return recurrence.ExportUpcomingOutput{Exported: exported}, err
			}
			exported++

			next, ok := cadence.NextOccurrence(date, s.Kind, s.Rule)
			if !ok || next <= date {
				break
			}
			date = next
		}
	}

	uc.l.Infof(ctx, "uc.ExportUpcoming: exported %d occurrences for user %s", exported, input.UserID)
	return recurrence.ExportUpcomingOutput{Exported: exported}, nil
}
