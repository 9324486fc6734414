// Package infra builds the storage, locking and time dependencies shared by the API and the CLI.
package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"task-scheduler/config"
	"task-scheduler/config/postgre"
	"task-scheduler/config/redis"
	"task-scheduler/internal/task/repository"
	"task-scheduler/internal/task/repository/memory"
	pgRepo "task-scheduler/internal/task/repository/postgre"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/gcalendar"
	"task-scheduler/pkg/locker"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

// Infra is everything a use case needs besides the logger.
type Infra struct {
	Repository repository.Repository
	Locker     locker.Locker
	Parser     *datemath.Parser
	Finder     *occupancy.Finder
	// Calendar is nil when Google Calendar is not configured or unusable.
	Calendar *gcalendar.Client
	// Readiness pings each configured backing store.
	Readiness map[string]func(ctx context.Context) error

	closers []func() error
}

// Build connects to whatever cfg configures and falls back to in-process implementations otherwise.
func Build(ctx context.Context, l log.Logger, cfg *config.Config) (*Infra, error) {
	inf := &Infra{Readiness: map[string]func(context.Context) error{}}

	parser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	inf.Parser = parser
	inf.Finder = occupancy.NewFinder(FinderConfig(cfg.Scheduler, parser.Location()))

	if err := inf.buildRepository(ctx, l, cfg.Postgres); err != nil {
		inf.Close()
		return nil, err
	}
	if err := inf.buildLocker(ctx, l, cfg.Redis); err != nil {
		inf.Close()
		return nil, err
	}
	inf.buildCalendar(ctx, l, cfg.GoogleCalendar)

	return inf, nil
}

// FinderConfig maps validated scheduler settings onto the slot grid.
func FinderConfig(cfg config.SchedulerConfig, loc *time.Location) occupancy.Config {
	fc := occupancy.DefaultConfig()
	fc.Location = loc
	if c, err := timeblock.ParseClock(cfg.DayStart); err == nil {
		fc.DayStart = c
	}
	if c, err := timeblock.ParseClock(cfg.DayEnd); err == nil {
		fc.DayEnd = c
	}
	if cfg.GridStep > 0 {
		fc.Step = cfg.GridStep
	}
	if c, err := timeblock.ParseClock(cfg.FallbackTime); err == nil {
		fc.FallbackTime = c
	}
	if len(cfg.DefaultTimes) > 0 {
		fc.DefaultTimes = fc.DefaultTimes[:0:0]
		for _, s := range cfg.DefaultTimes {
			if c, err := timeblock.ParseClock(s); err == nil {
				fc.DefaultTimes = append(fc.DefaultTimes, c)
			}
		}
	}
	return fc
}

func (inf *Infra) buildRepository(ctx context.Context, l log.Logger, cfg config.PostgresConfig) error {
	if cfg.DSN == "" {
		l.Warn(ctx, "postgres.dsn is empty, tasks are kept in memory")
		inf.Repository = memory.New()
		return nil
	}

	db, err := postgre.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	inf.closers = append(inf.closers, db.Close)
	inf.Readiness["postgres"] = func(ctx context.Context) error { return pingDB(ctx, db) }
	inf.Repository = pgRepo.New(db, l)
	l.Info(ctx, "Postgres task store connected")
	return nil
}

func pingDB(ctx context.Context, db *sql.DB) error { return db.PingContext(ctx) }

func (inf *Infra) buildLocker(ctx context.Context, l log.Logger, cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		inf.Locker = locker.NewMemory()
		return nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	inf.closers = append(inf.closers, client.Close)
	inf.Readiness["redis"] = func(ctx context.Context) error { return pingRedis(ctx, client) }
	inf.Locker = locker.NewRedis(l, client, locker.RedisConfig{TTL: cfg.LockTTL, MaxWait: cfg.LockWait})
	l.Infof(ctx, "Redis locks enabled at %s", cfg.Addr)
	return nil
}

func pingRedis(ctx context.Context, c *goredis.Client) error { return c.Ping(ctx).Err() }

// buildCalendar is best effort: scheduling works without a calendar.
func (inf *Infra) buildCalendar(ctx context.Context, l log.Logger, cfg config.GoogleCalendarConfig) {
	if cfg.CredentialsPath == "" {
		return
	}
	client, err := gcalendar.New(ctx, gcalendar.Options{
		CredentialsPath: cfg.CredentialsPath,
		TokenPath:       cfg.TokenPath,
		CalendarID:      cfg.CalendarID,
	})
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return
	}
	inf.Calendar = client
	l.Info(ctx, "Google Calendar initialized")
}

// Close releases connections in reverse order and returns the first error.
func (inf *Infra) Close() error {
	var firstErr error
	for i := len(inf.closers) - 1; i >= 0; i-- {
		if err := inf.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	inf.closers = nil
	return firstErr
}
