package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adjustmentHTTP "task-scheduler/internal/adjustment/delivery/http"
	tgDelivery "task-scheduler/internal/adjustment/delivery/telegram"
	adjustmentUC "task-scheduler/internal/adjustment/usecase"
	"task-scheduler/internal/middleware"
	"task-scheduler/internal/schedule"
)

// setupAdjustmentDomain wires state adjustments over HTTP and, when a bot is configured, Telegram.
func (srv HTTPServer) setupAdjustmentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, scheduleUC schedule.UseCase) error {
	uc := adjustmentUC.New(srv.l, srv.repo, srv.finder, srv.locker, scheduleUC, srv.metrics)

	h := adjustmentHTTP.New(srv.l, uc)
	adjustmentHTTP.RegisterRoutes(api.Group("/adjustments"), h, mw)
	srv.l.Infof(ctx, "Adjustment domain registered")

	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return nil
	}

	tg := tgDelivery.New(srv.l, uc, scheduleUC, srv.telegramBot, srv.telegramSecret)
	srv.gin.POST("/webhook/telegram", mw.RateLimit(), tg.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	return nil
}
