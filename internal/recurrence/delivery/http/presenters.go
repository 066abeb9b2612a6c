package http

import (
	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/cadence"
	"recurring-task-management/pkg/response"
)

// --- Request DTOs ---

type ruleReq struct {
	Interval int    `json:"interval" binding:"required"`
	Unit     string `json:"unit"     binding:"required"`
}

func (r *ruleReq) toInput() *recurrence.RuleInput {
	if r == nil {
		return nil
	}
	return &recurrence.RuleInput{Interval: r.Interval, Unit: r.Unit}
}

type createReq struct {
	UserID      string   `json:"-"` // populated from auth context
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"       binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=1000"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Kind        string   `json:"kind"        binding:"required"`
	Behavior    string   `json:"behavior"    binding:"omitempty"`
	Rule        *ruleReq `json:"rule"`
	NextDueDate string   `json:"next_due_date" binding:"required"`
}

func (r createReq) toInput() recurrence.CreateSeriesInput {
	return recurrence.CreateSeriesInput{
		UserID:      r.UserID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    recurrence.Priority(r.Priority),
		Kind:        cadence.Kind(r.Kind),
		Behavior:    recurrence.Behavior(r.Behavior),
		Rule:        r.Rule.toInput(),
		NextDueDate: r.NextDueDate,
	}
}

// ---

type listReq struct {
	UserID string `form:"-"`
	Today  string `form:"-"`
	Active *bool  `form:"active"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() recurrence.ListSeriesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return recurrence.ListSeriesInput{
		UserID: r.UserID,
		Active: r.Active,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	UserID      string   `json:"-"`
	ID          string   `json:"-"` // populated from URI param
	Title       string   `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Kind        string   `json:"kind"`
	Behavior    string   `json:"behavior"`
	Rule        *ruleReq `json:"rule"`
	NextDueDate string   `json:"next_due_date"`
	Active      *bool    `json:"active"`
}

func (r updateReq) toInput() recurrence.UpdateSeriesInput {
	return recurrence.UpdateSeriesInput{
		UserID:      r.UserID,
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    recurrence.Priority(r.Priority),
		Kind:        cadence.Kind(r.Kind),
		Behavior:    recurrence.Behavior(r.Behavior),
		Rule:        r.Rule.toInput(),
		NextDueDate: r.NextDueDate,
		Active:      r.Active,
	}
}

// ---

type previewReq struct {
	UserID   string `form:"-"`
	SeriesID string `form:"-"`
	Today    string `form:"-"`
	Count    int    `form:"count"`
}

func (r previewReq) toInput() recurrence.PreviewOccurrencesInput {
	return recurrence.PreviewOccurrencesInput{
		UserID:   r.UserID,
		SeriesID: r.SeriesID,
		Count:    r.Count,
		Today:    r.Today,
	}
}

// ---

type completeReq struct {
	UserID string
	ItemID string
	Today  string
}

func (r completeReq) toInput() recurrence.CompleteInstanceInput {
	return recurrence.CompleteInstanceInput{
		UserID: r.UserID,
		ItemID: r.ItemID,
		Today:  r.Today,
	}
}

// ---

type exportReq struct {
	UserID string `form:"-"`
	Today  string `form:"-"`
	Days   int    `form:"days"`
}

func (r exportReq) toInput() recurrence.ExportUpcomingInput {
	return recurrence.ExportUpcomingInput{
		UserID:      r.UserID,
		Today:       r.Today,
		HorizonDays: r.Days,
	}
}

// --- Response DTOs ---

type ruleResp struct {
	Interval int    `json:"interval"`
	Unit     string `json:"unit"`
}

func newRuleResp(rule *cadence.Rule) *ruleResp {
	if rule == nil {
		return nil
	}
	return &ruleResp{Interval: rule.Interval, Unit: string(rule.Unit)}
}

type seriesResp struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Priority    string            `json:"priority"`
	Kind        string            `json:"kind"`
	Behavior    string            `json:"behavior"`
	Rule        *ruleResp         `json:"rule,omitempty"`
	Cadence     string            `json:"cadence"`
	NextDueDate string            `json:"next_due_date"`
	Active      bool              `json:"active"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newSeriesResp(s recurrence.Series) seriesResp {
	return seriesResp{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Title:       s.Title,
		Description: s.Description,
		Priority:    string(s.Priority),
		Kind:        string(s.Kind),
		Behavior:    string(s.Behavior),
		Rule:        newRuleResp(s.Rule),
		Cadence:     cadence.Describe(s.Kind, s.Rule),
		NextDueDate: s.NextDueDate,
		Active:      s.Active,
		CreatedAt:   response.DateTime(s.CreatedAt),
		UpdatedAt:   response.DateTime(s.UpdatedAt),
	}
}

type itemResp struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	Priority           string            `json:"priority"`
	DueDate            string            `json:"due_date,omitempty"`
	Status             string            `json:"status"`
	RecurrenceSeriesID string            `json:"recurrence_series_id,omitempty"`
	CreatedAt          response.DateTime `json:"created_at"`
	UpdatedAt          response.DateTime `json:"updated_at"`
}

func newItemResp(it recurrence.Item) itemResp {
	return itemResp{
		ID:                 it.ID,
		Title:              it.Title,
		Priority:           string(it.Priority),
		DueDate:            it.DueDate,
		Status:             string(it.Status),
		RecurrenceSeriesID: it.RecurrenceSeriesID,
		CreatedAt:          response.DateTime(it.CreatedAt),
		UpdatedAt:          response.DateTime(it.UpdatedAt),
	}
}

type createResp struct {
	Series seriesResp `json:"series"`
}

func (h *handler) newCreateResp(out recurrence.CreateSeriesOutput) createResp {
	return createResp{Series: newSeriesResp(out.Series)}
}

type listResp struct {
	Series []seriesResp `json:"series"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

func (h *handler) newListResp(out recurrence.ListSeriesOutput) listResp {
	series := make([]seriesResp, len(out.Series))
	for i, s := range out.Series {
		series[i] = newSeriesResp(s)
	}
	return listResp{
		Series: series,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Series    seriesResp `json:"series"`
	Instances []itemResp `json:"instances"`
}

func (h *handler) newDetailResp(out recurrence.DetailSeriesOutput) detailResp {
	instances := make([]itemResp, len(out.Instances))
	for i, it := range out.Instances {
		instances[i] = newItemResp(it)
	}
	return detailResp{Series: newSeriesResp(out.Series), Instances: instances}
}

type updateResp struct {
	Series seriesResp `json:"series"`
}

func (h *handler) newUpdateResp(out recurrence.UpdateSeriesOutput) updateResp {
	return updateResp{Series: newSeriesResp(out.Series)}
}

type previewResp struct {
	SeriesID string   `json:"series_id"`
	Cadence  string   `json:"cadence"`
	Dates    []string `json:"dates"`
}

func (h *handler) newPreviewResp(out recurrence.PreviewOccurrencesOutput) previewResp {
	return previewResp{
		SeriesID: out.SeriesID,
		Cadence:  out.Cadence,
		Dates:    out.Dates,
	}
}

type completeResp struct {
	Item   itemResp    `json:"item"`
	Series *seriesResp `json:"series,omitempty"`
}

func (h *handler) newCompleteResp(out recurrence.CompleteInstanceOutput) completeResp {
	resp := completeResp{Item: newItemResp(out.Item)}
	if out.Series != nil {
		s := newSeriesResp(*out.Series)
		resp.Series = &s
	}
	return resp
}

type exportResp struct {
	Exported int `json:"exported"`
}

func (h *handler) newExportResp(out recurrence.ExportUpcomingOutput) exportResp {
	return exportResp{Exported: out.Exported}
}
