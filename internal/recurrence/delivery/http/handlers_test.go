package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/middleware"
	"recurring-task-management/internal/recurrence"
	deliveryHTTP "recurring-task-management/internal/recurrence/delivery/http"
	"recurring-task-management/pkg/cadence"
	"recurring-task-management/pkg/log"
)

const testToken = "test-token"

// mockUseCase implements recurrence.UseCase with overridable funcs.
type mockUseCase struct {
	syncFn     func(ctx context.Context, userID, today string) error
	rolloverFn func(ctx context.Context, userID, today string) error
	createFn   func(ctx context.Context, input recurrence.CreateSeriesInput) (recurrence.CreateSeriesOutput, error)
	listFn     func(ctx context.Context, input recurrence.ListSeriesInput) (recurrence.ListSeriesOutput, error)
	detailFn   func(ctx context.Context, userID, id string) (recurrence.DetailSeriesOutput, error)
	updateFn   func(ctx context.Context, input recurrence.UpdateSeriesInput) (recurrence.UpdateSeriesOutput, error)
	deleteFn   func(ctx context.Context, userID, id string) error
	completeFn func(ctx context.Context, input recurrence.CompleteInstanceInput) (recurrence.CompleteInstanceOutput, error)
	previewFn  func(ctx context.Context, input recurrence.PreviewOccurrencesInput) (recurrence.PreviewOccurrencesOutput, error)
	exportFn   func(ctx context.Context, input recurrence.ExportUpcomingInput) (recurrence.ExportUpcomingOutput, error)
}

func (m *mockUseCase) Sync(ctx context.Context, userID, today string) error {
	if m.syncFn == nil {
		return nil
	}
	return m.syncFn(ctx, userID, today)
}

func (m *mockUseCase) Rollover(ctx context.Context, userID, today string) error {
	if m.rolloverFn == nil {
		return nil
	}
	return m.rolloverFn(ctx, userID, today)
}

func (m *mockUseCase) CreateSeries(ctx context.Context, input recurrence.CreateSeriesInput) (recurrence.CreateSeriesOutput, error) {
	return m.createFn(ctx, input)
}

func (m *mockUseCase) ListSeries(ctx context.Context, input recurrence.ListSeriesInput) (recurrence.ListSeriesOutput, error) {
	if m.listFn == nil {
		return recurrence.ListSeriesOutput{}, nil
	}
	return m.listFn(ctx, input)
}

func (m *mockUseCase) DetailSeries(ctx context.Context, userID, id string) (recurrence.DetailSeriesOutput, error) {
	return m.detailFn(ctx, userID, id)
}

func (m *mockUseCase) UpdateSeries(ctx context.Context, input recurrence.UpdateSeriesInput) (recurrence.UpdateSeriesOutput, error) {
	return m.updateFn(ctx, input)
}

func (m *mockUseCase) DeleteSeries(ctx context.Context, userID, id string) error {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockUseCase) CompleteInstance(ctx context.Context, input recurrence.CompleteInstanceInput) (recurrence.CompleteInstanceOutput, error) {
	return m.completeFn(ctx, input)
}

func (m *mockUseCase) PreviewOccurrences(ctx context.Context, input recurrence.PreviewOccurrencesInput) (recurrence.PreviewOccurrencesOutput, error) {
	return m.previewFn(ctx, input)
}

func (m *mockUseCase) ExportUpcoming(ctx context.Context, input recurrence.ExportUpcomingInput) (recurrence.ExportUpcomingOutput, error) {
	return m.exportFn(ctx, input)
}

func newTestRouter(uc recurrence.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNop()
	mw := middleware.New(l, testToken, 600)
	h := deliveryHTTP.New(l, uc)
	deliveryHTTP.RegisterRoutes(r.Group("/api/v1/recurrence"), h, mw)
	return r
}

func doRequest(r *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
		req.Header.Set("X-User-ID", "user-1")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSeries_SyncsBeforeListing(t *testing.T) {
	var calls []string
	uc := &mockUseCase{
		syncFn: func(ctx context.Context, userID, today string) error {
			calls = append(calls, "sync:"+userID+":"+today)
			return nil
		},
		listFn: func(ctx context.Context, input recurrence.ListSeriesInput) (recurrence.ListSeriesOutput, error) {
			calls = append(calls, "list:"+input.UserID)
			return recurrence.ListSeriesOutput{
				Series: []recurrence.Series{{
					ID:          "series-1",
					UserID:      input.UserID,
					Title:       "Water plants",
					Priority:    recurrence.PriorityMedium,
					Kind:        cadence.KindDaily,
					Behavior:    recurrence.BehaviorAfterCompletion,
					NextDueDate: "2024-05-02",
					Active:      true,
				}},
				Total: 1,
				Limit: 20,
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/recurrence/series?today=2024-05-01", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if len(calls) != 2 || calls[0] != "sync:user-1:2024-05-01" || calls[1] != "list:user-1" {
		t.Errorf("call order = %v, want sync then list", calls)
	}

	var resp struct {
		Data struct {
			Series []struct {
				ID      string `json:"id"`
				Cadence string `json:"cadence"`
			} `json:"series"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 1 || len(resp.Data.Series) != 1 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
	if resp.Data.Series[0].Cadence != "Daily" {
		t.Errorf("cadence = %q, want Daily", resp.Data.Series[0].Cadence)
	}
}

func TestCreateSeries_HTTP(t *testing.T) {
	uc := &mockUseCase{
		createFn: func(ctx context.Context, input recurrence.CreateSeriesInput) (recurrence.CreateSeriesOutput, error) {
			if input.UserID != "user-1" {
				t.Errorf("user id = %s, want the authenticated user", input.UserID)
			}
			if input.Rule == nil || input.Rule.Interval != 3 {
				t.Errorf("rule = %+v, want interval 3", input.Rule)
			}
			return recurrence.CreateSeriesOutput{Series: recurrence.Series{
				ID:          "series-1",
				UserID:      input.UserID,
				Title:       input.Title,
				Priority:    recurrence.PriorityMedium,
				Kind:        input.Kind,
				Behavior:    recurrence.DefaultBehavior,
				Rule:        &cadence.Rule{Interval: 3, Unit: cadence.UnitDay},
				NextDueDate: input.NextDueDate,
				Active:      true,
			}}, nil
		},
	}
	r := newTestRouter(uc)

	body := `{"title":"Stretch","kind":"custom","rule":{"interval":3,"unit":"day"},"next_due_date":"2024-05-01"}`
	w := doRequest(r, http.MethodPost, "/api/v1/recurrence/series", body, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestCreateSeries_ValidationErrorIs400(t *testing.T) {
	uc := &mockUseCase{
		createFn: func(ctx context.Context, input recurrence.CreateSeriesInput) (recurrence.CreateSeriesOutput, error) {
			return recurrence.CreateSeriesOutput{}, recurrence.ErrInvalidRule
		},
	}
	r := newTestRouter(uc)

	body := `{"title":"Stretch","kind":"custom","rule":{"interval":400,"unit":"day"},"next_due_date":"2024-05-01"}`
	w := doRequest(r, http.MethodPost, "/api/v1/recurrence/series", body, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}
}

func TestDetailSeries_NotFoundIs404(t *testing.T) {
	uc := &mockUseCase{
		detailFn: func(ctx context.Context, userID, id string) (recurrence.DetailSeriesOutput, error) {
			return recurrence.DetailSeriesOutput{}, recurrence.ErrSeriesNotFound
		},
	}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/recurrence/series/missing", "", true)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404; body = %s", w.Code, w.Body.String())
	}
}

func TestAuth(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/recurrence/series", "", false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recurrence/series", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing user header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recurrence/series", nil)
		req.Header.Set("Authorization", "Bearer "+testToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestSyncThrottle(t *testing.T) {
	uc := &mockUseCase{}
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNop()
	// 10 per minute yields a burst of 1: the second immediate request trips.
	mw := middleware.New(l, testToken, 10)
	h := deliveryHTTP.New(l, uc)
	deliveryHTTP.RegisterRoutes(r.Group("/api/v1/recurrence"), h, mw)

	first := doRequest(r, http.MethodGet, "/api/v1/recurrence/series", "", true)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d", first.Code)
	}
	second := doRequest(r, http.MethodGet, "/api/v1/recurrence/series", "", true)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
