package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/recurrence/usecase"
	"recurring-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Recurrence domain
	db       *sql.DB
	calendar usecase.CalendarClient // nil when export is not configured

	// Middleware
	apiToken       string
	syncRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	Calendar usecase.CalendarClient

	APIToken       string
	SyncRatePerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		calendar:       cfg.Calendar,
		apiToken:       cfg.APIToken,
		syncRatePerMin: cfg.SyncRatePerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
