package usecase_test

import (
	"context"
	"testing"

	"recurring-task-management/internal/recurrence"
	repo "recurring-task-management/internal/recurrence/repository"
	"recurring-task-management/pkg/cadence"
)

func TestCompleteInstance_AdvancesAfterCompletionSeries(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo()
	uc := newUseCase(r)

	s := seedSeries(t, r, repo.InsertSeriesOptions{
		UserID:      "user-1",
		Title:       "Water plants",
		Priority:    recurrence.PriorityMedium,
		Kind:        cadence.KindDaily,
		Behavior:    recurrence.BehaviorAfterCompletion,
		NextDueDate: "2024-05-01",
		Active:      true,
	})
	if err := uc.Sync(ctx, "user-1", "2024-05-01"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	instance := r.instancesOf(s.ID)[0]

	out, err := uc.CompleteInstance(ctx, recurrence.CompleteInstanceInput{
		UserID: "user-1",
		ItemID: instance.ID,
		Today:  "2024-05-01",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Item.Status != recurrence.StatusDone {
		t.Errorf("item status = %s, want done", out.Item.Status)
	}
	if out.Series == nil {
		t.Fatal("expected the advanced series in the output")
	}
	if out.Series.NextDueDate != "2024-05-02" {
		t.Errorf("next due date = %s, want 2024-05-02", out.Series.NextDueDate)
	}

	// The next sync produces the follow-up instance.
	if err := uc.Sync(ctx, "user-1", "2024-05-02"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got := len(r.instancesOf(s.ID)); got != 2 {
		t.Errorf("instances after follow-up sync = %d, want 2", got)
	}
}

func TestCompleteInstance_LateCompletionAnchorsOnToday(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo()
	uc := newUseCase(r)

	s := seedSeries(t, r, repo.InsertSeriesOptions{
		UserID:      "user-1",
		Title:       "Weekly review",
		Priority:    recurrence.PriorityMedium,
		Kind:        cadence.KindWeekly,
		Behavior:    recurrence.BehaviorAfterCompletion,
		NextDueDate: "2024-05-06",
		Active:      true,
	})
	if err := uc.Sync(ctx, "user-1", "2024-05-06"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	instance := r.instancesOf(s.ID)[0]

	// Completed ten days late: the cadence restarts from today rather than
	// producing an immediately overdue follow-up.
	out, err := uc.CompleteInstance(ctx, recurrence.CompleteInstanceInput{
		UserID: "user-1",
		ItemID: instance.ID,
		Today:  "2024-05-16",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Series == nil || out.Series.NextDueDate != "2024-05-23" {
		t.Errorf("series = %+v, want next due date 2024-05-23", out.Series)
	}
}

func TestCompleteInstance_AlreadyDoneIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo()
	uc := newUseCase(r)

	s := seedSeries(t, r, repo.InsertSeriesOptions{
		UserID:      "user-1",
		Title:       "Water plants",
		Priority:    recurrence.PriorityMedium,
		Kind:        cadence.KindDaily,
		Behavior:    recurrence.BehaviorAfterCompletion,
		NextDueDate: "2024-05-01",
		Active:      true,
	})
	if err := uc.Sync(ctx, "user-1", "2024-05-01"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	instance := r.instancesOf(s.ID)[0]

	input := recurrence.CompleteInstanceInput{UserID: "user-1", ItemID: instance.ID, Today: "2024-05-01"}
	if _, err := uc.CompleteInstance(ctx, input); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	out, err := uc.CompleteInstance(ctx, input)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if out.Series != nil {
		t.Error("second completion must not advance the series again")
	}
	after, _ := r.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: s.ID})
	if after.NextDueDate != "2024-05-02" {
		t.Errorf("next due date = %s, want 2024-05-02", after.NextDueDate)
	}
}

func TestCompleteInstance_DuplicateOnScheduleDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo()
	uc := newUseCase(r)

	s := seedSeries(t, r, repo.InsertSeriesOptions{
		UserID:      "user-1",
		Title:       "Daily standup notes",
		Priority:    recurrence.PriorityLow,
		Kind:        cadence.KindDaily,
		Behavior:    recurrence.BehaviorDuplicateOnSchedule,
		NextDueDate: "2024-05-01",
		Active:      true,
	})
	if err := uc.Sync(ctx, "user-1", "2024-05-01"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	instance := r.instancesOf(s.ID)[0]

	out, err := uc.CompleteInstance(ctx, recurrence.CompleteInstanceInput{
		UserID: "user-1",
		ItemID: instance.ID,
		Today:  "2024-05-01",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// The schedule cursor belongs to the sync pass in this mode.
	if out.Series != nil {
		t.Error("duplicate-on-schedule completion must not touch the series")
	}
	after, _ := r.GetOneSeries(ctx, repo.GetOneSeriesOptions{ID: s.ID})
	if after.NextDueDate != "2024-05-02" {
		t.Errorf("next due date = %s, want the sync-advanced 2024-05-02", after.NextDueDate)
	}
}

func TestCompleteInstance_PlainItem(t *testing.T) {
	ctx := context.Background()
	r := newMockRepo()
	uc := newUseCase(r)

	it, err := r.InsertInstance(ctx, repo.InsertInstanceOptions{
		UserID:   "user-1",
		Title:    "One-off errand",
		Priority: recurrence.PriorityLow,
		DueDate:  "2024-05-01",
		Status:   recurrence.StatusOpen,
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}

	out, err := uc.CompleteInstance(ctx, recurrence.CompleteInstanceInput{
		UserID: "user-1",
		ItemID: it.ID,
		Today:  "2024-05-01",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Item.Status != recurrence.StatusDone || out.Series != nil {
		t.Errorf("got status %s, series %v; want done and no series", out.Item.Status, out.Series)
	}
}

func TestCompleteInstance_NotFound(t *testing.T) {
	uc := newUseCase(newMockRepo())

	_, err := uc.CompleteInstance(context.Background(), recurrence.CompleteInstanceInput{
		UserID: "user-1",
		ItemID: "missing",
		Today:  "2024-05-01",
	})
	if err != recurrence.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
