package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

// RegisterRoutes maps the adjustment endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.UserScope(), mw.RateLimit())
	{
		rg.POST("/classify", h.Classify)
		rg.POST("", h.Adjust)
	}
}
