package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/middleware"
	"recurring-task-management/pkg/cadence"
)

func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

// today resolves the effective current date: the today query parameter when
// given, else the server clock. Validation of the value happens in the use
// case layer.
func today(c *gin.Context) string {
	if v := c.Query("today"); v != "" {
		return v
	}
	return time.Now().Format(cadence.DateLayout)
}

// processCreateReq binds and validates the create series request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = userID(c)
	return req, nil
}

// processListReq binds the list series query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID = userID(c)
	req.Today = today(c)
	return req, nil
}

// processUpdateReq binds the update series request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	req.UserID = userID(c)
	return req, nil
}

// processPreviewReq binds the preview query parameters + URI param.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SeriesID = c.Param("id")
	req.UserID = userID(c)
	req.Today = today(c)
	return req, nil
}

// processCompleteReq binds the complete item URI param.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	return completeReq{
		UserID: userID(c),
		ItemID: c.Param("id"),
		Today:  today(c),
	}, nil
}

// processExportReq binds the export query parameters.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.UserID = userID(c)
	req.Today = today(c)
	return req, nil
}
