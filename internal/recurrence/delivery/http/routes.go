package http

import (
	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads of recurring state go through SyncThrottle because they trigger a
// reconciliation pass inline.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	series := rg.Group("/series")
	{
		series.POST("", mw.Auth(), h.Create)
		series.GET("", mw.Auth(), mw.SyncThrottle(), h.List)
		series.GET("/:id", mw.Auth(), h.Detail)
		series.PUT("/:id", mw.Auth(), h.Update)
		series.DELETE("/:id", mw.Auth(), h.Delete)
		series.GET("/:id/preview", mw.Auth(), h.Preview)
	}

	items := rg.Group("/items")
	{
		items.POST("/:id/complete", mw.Auth(), h.Complete)
	}

	rg.POST("/rollover", mw.Auth(), mw.SyncThrottle(), h.Rollover)
	rg.POST("/export/calendar", mw.Auth(), h.Export)
}
