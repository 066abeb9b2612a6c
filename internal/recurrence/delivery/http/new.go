package http

import (
	"github.com/gin-gonic/gin"

	"recurring-task-management/internal/recurrence"
	"recurring-task-management/pkg/log"
)

// Handler is the public interface for the recurrence HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Preview(c *gin.Context)
	Complete(c *gin.Context)
	Rollover(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recurrence.UseCase
}

// New creates a new HTTP handler for the recurrence domain.
func New(l log.Logger, uc recurrence.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
