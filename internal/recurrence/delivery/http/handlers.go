package http

import (
	"recurring-task-management/pkg/response"

	"github.com/gin-gonic/gin"
)

// Create godoc
// @Summary     Create a recurring series
// @Description Creates a new recurring series. A rule is required for custom kind and rejected otherwise.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Series data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/recurrence/series [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateSeries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List recurring series
// @Description Reconciles the user's recurring state, then returns a paginated list of series. Any instances whose scheduled date has arrived exist by the time the response is built.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       active query bool   false "Filter by active state"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Param       today  query string false "Override current date (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/recurrence/series [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Sync(ctx, req.UserID, req.Today); err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.ListSeries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get series detail
// @Description Returns a single series with its generated instances.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id path string true "Series ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recurrence/series/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")

	output, err := h.uc.DetailSeries(ctx, userID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailSeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a series
// @Description Partial update of an existing series. Changing kind away from custom drops the stored rule.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Series ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recurrence/series/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateSeries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a series
// @Description Soft-deletes a series. Existing instances are kept.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id path string true "Series ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recurrence/series/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")

	if err := h.uc.DeleteSeries(ctx, userID(c), id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSeries: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Preview godoc
// @Summary     Preview upcoming occurrences
// @Description Returns the next N occurrence dates of a series without materializing anything.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Series ID"
// @Param       count query int    false "Number of dates (default: 5, max: 30)"
// @Param       today query string false "Override current date (YYYY-MM-DD)"
// @Success     200 {object} previewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recurrence/series/{id}/preview [GET]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PreviewOccurrences(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PreviewOccurrences: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Complete godoc
// @Summary     Complete an item
// @Description Marks an item done. For after-completion series this is the moment the next occurrence gets scheduled.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Item ID"
// @Param       today query string false "Override current date (YYYY-MM-DD)"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recurrence/items/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CompleteInstance(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteInstance: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Rollover godoc
// @Summary     Roll over due legacy items
// @Description Reopens done legacy recurring items whose due date has arrived again. Transitional endpoint for unmigrated data.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       today query string false "Override current date (YYYY-MM-DD)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurrence/rollover [POST]
func (h *handler) Rollover(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Rollover(ctx, userID(c), today(c)); err != nil {
		h.l.Errorf(ctx, "uc.Rollover: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Export godoc
// @Summary     Export upcoming occurrences to Google Calendar
// @Description Pushes every occurrence of the user's active series inside the horizon to the configured calendar as all-day events.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       days  query int    false "Horizon in days (default: 7, max: 31)"
// @Param       today query string false "Override current date (YYYY-MM-DD)"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/recurrence/export/calendar [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportUpcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportUpcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExportResp(output))
}
