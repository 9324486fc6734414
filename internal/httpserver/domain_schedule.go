package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/internal/schedule"
	scheduleHTTP "task-scheduler/internal/schedule/delivery/http"
	scheduleUC "task-scheduler/internal/schedule/usecase"
)

// setupScheduleDomain wires the scheduling use case and registers /api/v1/schedule.
// The use case is returned because the adjustment domain sweeps through it.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (schedule.UseCase, error) {
	uc := scheduleUC.New(srv.l, srv.repo, srv.parser, srv.finder, srv.locker, scheduleUC.Options{
		Metrics:               srv.metrics,
		Calendar:              srv.calendar,
		CalendarLookaheadDays: srv.calendarLookaheadDays,
	})

	h := scheduleHTTP.New(srv.l, uc)
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Schedule domain registered with Google Calendar")
	} else {
		srv.l.Infof(ctx, "Schedule domain registered")
	}
	return uc, nil
}
