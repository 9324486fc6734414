package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-scheduler/config"
	_ "task-scheduler/docs" // Swagger docs
	"task-scheduler/internal/httpserver"
	"task-scheduler/internal/infra"
	"task-scheduler/internal/middleware"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/metrics"
	"task-scheduler/pkg/telegram"
)

// @title       Task Scheduler API
// @description Conflict-free time-slot scheduling and state-driven schedule adjustment.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting task scheduler...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Scheduler.Timezone)

	// 3. Storage, locks, calendar
	inf, err := infra.Build(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize infrastructure: ", err)
		return
	}
	defer inf.Close()

	readiness := make(map[string]httpserver.ReadinessCheck, len(inf.Readiness))
	for name, check := range inf.Readiness {
		readiness[name] = check
	}

	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxKeys:        cfg.RateLimit.MaxKeys,
			TTL:            cfg.RateLimit.TTL,
		},
		Readiness:             readiness,
		Repository:            inf.Repository,
		Parser:                inf.Parser,
		Finder:                inf.Finder,
		Locker:                inf.Locker,
		Metrics:               metrics.New(),
		CalendarLookaheadDays: cfg.GoogleCalendar.LookaheadDays,
	}
	if inf.Calendar != nil {
		srvCfg.Calendar = inf.Calendar
	}

	// 4. Telegram (optional)
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		srvCfg.TelegramBot = bot
		srvCfg.TelegramSecret = cfg.Telegram.SecretToken
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "telegram.bot_token is empty, Telegram webhook disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
