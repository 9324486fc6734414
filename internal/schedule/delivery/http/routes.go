package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

// RegisterRoutes maps the schedule endpoints. Every route needs a user scope and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.UserScope(), mw.RateLimit())
	{
		rg.POST("/plans", h.Plan)
		rg.POST("/sweep", h.Sweep)
		rg.GET("/report", h.Report)
		rg.POST("/parse", h.Parse)
	}
}
