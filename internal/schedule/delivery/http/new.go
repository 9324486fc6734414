package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Plan(c *gin.Context)
	Sweep(c *gin.Context)
	Report(c *gin.Context)
	Parse(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
