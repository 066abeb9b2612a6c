package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/middleware"
	recurrenceHTTP "recurring-task-management/internal/recurrence/delivery/http"
	recurrenceRepo "recurring-task-management/internal/recurrence/repository/sqlite"
	recurrenceUC "recurring-task-management/internal/recurrence/usecase"
)

// setupRecurrenceDomain initializes the recurrence domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupRecurrenceDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l, srv.apiToken, srv.syncRatePerMin)

	// 1. Repository
	repo := recurrenceRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := recurrenceUC.New(repo, srv.calendar, srv.l)

	// 3. HTTP Handler
	h := recurrenceHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/recurrence/...
	recurrenceHTTP.RegisterRoutes(api.Group("/recurrence"), h, mw)

	srv.l.Infof(ctx, "Recurrence domain registered")
	return nil
}
