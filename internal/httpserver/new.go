package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	tgDelivery "task-scheduler/internal/adjustment/delivery/telegram"
	"task-scheduler/internal/middleware"
	schedUC "task-scheduler/internal/schedule/usecase"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/locker"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/metrics"
	"task-scheduler/pkg/occupancy"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   middleware.RateLimitConfig
	readiness   map[string]ReadinessCheck

	// Scheduling core
	repo                  repository.Repository
	parser                *datemath.Parser
	finder                *occupancy.Finder
	locker                locker.Locker
	metrics               *metrics.Metrics
	calendar              schedUC.Calendar
	calendarLookaheadDays int

	// Telegram
	telegramBot    tgDelivery.Sender
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.RateLimitConfig
	Readiness   map[string]ReadinessCheck

	Repository            repository.Repository
	Parser                *datemath.Parser
	Finder                *occupancy.Finder
	Locker                locker.Locker
	Metrics               *metrics.Metrics
	Calendar              schedUC.Calendar // optional
	CalendarLookaheadDays int

	// Optional: the webhook route is only registered with a bot.
	TelegramBot    tgDelivery.Sender
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                     logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		rateLimit:             cfg.RateLimit,
		readiness:             cfg.Readiness,
		repo:                  cfg.Repository,
		parser:                cfg.Parser,
		finder:                cfg.Finder,
		locker:                cfg.Locker,
		metrics:               cfg.Metrics,
		calendar:              cfg.Calendar,
		calendarLookaheadDays: cfg.CalendarLookaheadDays,
		telegramBot:           cfg.TelegramBot,
		telegramSecret:        cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.parser == nil || srv.finder == nil {
		return errors.New("parser and finder are required")
	}
	return nil
}
