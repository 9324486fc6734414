package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/adjustment"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the adjustment HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
	Adjust(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc adjustment.UseCase
}

// New creates a new HTTP handler for the adjustment domain.
func New(l log.Logger, uc adjustment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
