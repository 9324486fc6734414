package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/schedule"
	pkgLog "task-scheduler/pkg/log"
)

// Sender is the subset of the Bot API the handler replies through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l              pkgLog.Logger
	adjustUC       adjustment.UseCase
	scheduleUC     schedule.UseCase
	bot            Sender
	secretToken    string
	processTimeout time.Duration
}

// New creates a Telegram delivery handler. An empty secretToken disables the header check.
func New(l pkgLog.Logger, adjustUC adjustment.UseCase, scheduleUC schedule.UseCase, bot Sender, secretToken string) Handler {
	return &handler{
		l:              l,
		adjustUC:       adjustUC,
		scheduleUC:     scheduleUC,
		bot:            bot,
		secretToken:    secretToken,
		processTimeout: 30 * time.Second,
	}
}
