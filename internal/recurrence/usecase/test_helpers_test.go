package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/gcalendar"
)

// mockRepo is an in-memory repository.Repository with the same observable
// semantics as the sqlite implementation: zero-value results for not-found,
// and a unique (series, due date) constraint on generated instances.
type mockRepo struct {
	mu     sync.Mutex
	series map[string]recurrence.Series
	items  map[string]recurrence.Item
	seq    int

	// failNext maps a method name to an error returned on its next call.
	failNext map[string]error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		series:   make(map[string]recurrence.Series),
		items:    make(map[string]recurrence.Item),
		failNext: make(map[string]error),
	}
}

func (m *mockRepo) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *mockRepo) fail(method string) error {
	if err, ok := m.failNext[method]; ok {
		delete(m.failNext, method)
		return err
	}
	return nil
}

// --- SeriesRepository ---

func (m *mockRepo) InsertSeries(ctx context.Context, opt repo.InsertSeriesOptions) (recurrence.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("InsertSeries"); err != nil {
		return recurrence.Series{}, err
	}

	now := time.Now().UTC()
	s := recurrence.Series{
		ID:          m.nextID("series"),
		UserID:      opt.UserID,
		ProjectID:   opt.ProjectID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Kind:        opt.Kind,
		Behavior:    opt.Behavior,
		Rule:        opt.Rule,
		NextDueDate: opt.NextDueDate,
		Active:      opt.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.series[s.ID] = s
	return s, nil
}

func (m *mockRepo) UpdateSeries(ctx context.Context, opt repo.UpdateSeriesOptions) (recurrence.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("UpdateSeries"); err != nil {
		return recurrence.Series{}, err
	}

	s, ok := m.series[opt.ID]
	if !ok {
		return recurrence.Series{}, nil
	}
	if opt.Title != nil {
		s.Title = *opt.Title
	}
	if opt.Description != nil {
		s.Description = *opt.Description
	}
	if opt.Priority != nil {
		s.Priority = *opt.Priority
	}
	if opt.Kind != nil {
		s.Kind = *opt.Kind
	}
	if opt.Behavior != nil {
		s.Behavior = *opt.Behavior
	}
	if opt.Rule != nil {
		s.Rule = opt.Rule
	} else if opt.ClearRule {
		s.Rule = nil
	}
	if opt.NextDueDate != nil {
		s.NextDueDate = *opt.NextDueDate
	}
	if opt.Active != nil {
		s.Active = *opt.Active
	}
	s.UpdatedAt = time.Now().UTC()
	m.series[s.ID] = s
	return s, nil
}

func (m *mockRepo) GetOneSeries(ctx context.Context, opt repo.GetOneSeriesOptions) (recurrence.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetOneSeries"); err != nil {
		return recurrence.Series{}, err
	}

	for _, s := range m.series {
		if s.DeletedAt != nil {
			continue
		}
		if opt.ID != "" && s.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && s.UserID != opt.UserID {
			continue
		}
		return s, nil
	}
	return recurrence.Series{}, nil
}

func (m *mockRepo) ListSeries(ctx context.Context, opt repo.ListSeriesOptions) ([]recurrence.Series, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListSeries"); err != nil {
		return nil, 0, err
	}

	var out []recurrence.Series
	for _, s := range m.series {
		if s.DeletedAt != nil {
			continue
		}
		if opt.UserID != "" && s.UserID != opt.UserID {
			continue
		}
		if opt.Active != nil && s.Active != *opt.Active {
			continue
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (m *mockRepo) FindActiveSeriesDueBy(ctx context.Context, userID, date string) ([]recurrence.Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindActiveSeriesDueBy"); err != nil {
		return nil, err
	}

	var out []recurrence.Series
	for _, s := range m.series {
		if s.UserID == userID && s.Active && s.DeletedAt == nil && s.NextDueDate <= date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) SoftDeleteSeries(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("SoftDeleteSeries"); err != nil {
		return err
	}

	if s, ok := m.series[id]; ok && s.DeletedAt == nil {
		now := time.Now().UTC()
		s.DeletedAt = &now
		m.series[id] = s
	}
	return nil
}

// --- ItemRepository ---

func (m *mockRepo) InsertInstance(ctx context.Context, opt repo.InsertInstanceOptions) (recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("InsertInstance"); err != nil {
		return recurrence.Item{}, err
	}

	if opt.RecurrenceSeriesID != "" {
		for _, it := range m.items {
			if it.RecurrenceSeriesID == opt.RecurrenceSeriesID && it.DueDate == opt.DueDate {
				return recurrence.Item{}, repo.ErrDuplicateInstance
			}
		}
	}

	now := time.Now().UTC()
	it := recurrence.Item{
		ID:                 m.nextID("item"),
		UserID:             opt.UserID,
		ProjectID:          opt.ProjectID,
		Title:              opt.Title,
		Description:        opt.Description,
		Priority:           opt.Priority,
		DueDate:            opt.DueDate,
		Status:             opt.Status,
		RecurrenceSeriesID: opt.RecurrenceSeriesID,
		RecurrenceKind:     "none",
		RecurrenceBehavior: recurrence.DefaultBehavior,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("UpdateItem"); err != nil {
		return recurrence.Item{}, err
	}

	it, ok := m.items[opt.ID]
	if !ok {
		return recurrence.Item{}, nil
	}
	if opt.Status != nil {
		it.Status = *opt.Status
	}
	if opt.DueDate != nil {
		it.DueDate = *opt.DueDate
	}
	if opt.RecurrenceSeriesID != nil {
		it.RecurrenceSeriesID = *opt.RecurrenceSeriesID
	}
	if opt.RecurrenceProcessedAt != nil {
		it.RecurrenceProcessedAt = opt.RecurrenceProcessedAt
	}
	if opt.ClearLegacyRecurrence {
		it.RecurrenceKind = "none"
		it.RecurrenceBehavior = recurrence.DefaultBehavior
		it.RecurrenceRule = nil
	}
	it.UpdatedAt = time.Now().UTC()
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("GetOneItem"); err != nil {
		return recurrence.Item{}, err
	}

	for _, it := range m.items {
		if it.DeletedAt != nil {
			continue
		}
		if opt.ID != "" && it.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && it.UserID != opt.UserID {
			continue
		}
		return it, nil
	}
	return recurrence.Item{}, nil
}

func (m *mockRepo) FindOutstandingInstance(ctx context.Context, seriesID string) (recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindOutstandingInstance"); err != nil {
		return recurrence.Item{}, err
	}

	for _, it := range m.items {
		if it.DeletedAt == nil && it.RecurrenceSeriesID == seriesID && it.Status.Outstanding() {
			return it, nil
		}
	}
	return recurrence.Item{}, nil
}

func (m *mockRepo) FindInstanceByDueDate(ctx context.Context, seriesID, date string) (recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindInstanceByDueDate"); err != nil {
		return recurrence.Item{}, err
	}

	for _, it := range m.items {
		if it.DeletedAt == nil && it.RecurrenceSeriesID == seriesID && it.DueDate == date {
			return it, nil
		}
	}
	return recurrence.Item{}, nil
}

func (m *mockRepo) FindLegacyRecurringItems(ctx context.Context, userID string) ([]recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("FindLegacyRecurringItems"); err != nil {
		return nil, err
	}

	var out []recurrence.Item
	for _, it := range m.items {
		if it.UserID == userID && it.DeletedAt == nil && it.IsLegacyRecurring() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRepo) ListItemsBySeries(ctx context.Context, seriesID string) ([]recurrence.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListItemsBySeries"); err != nil {
		return nil, err
	}

	var out []recurrence.Item
	for _, it := range m.items {
		if it.DeletedAt == nil && it.RecurrenceSeriesID == seriesID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRepo) BulkReopenDueLegacyItems(ctx context.Context, userID, date string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("BulkReopenDueLegacyItems"); err != nil {
		return 0, err
	}

	var n int64
	for id, it := range m.items {
		if it.UserID != userID || it.DeletedAt != nil {
			continue
		}
		if it.Status != recurrence.StatusDone || !it.IsLegacyRecurring() {
			continue
		}
		if it.RecurrenceProcessedAt != nil {
			continue
		}
		if it.DueDate == "" || it.DueDate > date {
			continue
		}
		it.Status = recurrence.StatusOpen
		m.items[id] = it
		n++
	}
	return n, nil
}

// instancesOf returns the generated instances of a series, for assertions.
func (m *mockRepo) instancesOf(seriesID string) []recurrence.Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []recurrence.Item
	for _, it := range m.items {
		if it.RecurrenceSeriesID == seriesID {
			out = append(out, it)
		}
	}
	return out
}

// mockCalendar records created events and optionally fails.
type mockCalendar struct {
	events []gcalendar.AllDayEvent
	err    error
}

func (m *mockCalendar) CreateAllDayEvent(ctx context.Context, ev gcalendar.AllDayEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}
