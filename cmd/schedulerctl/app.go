package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"task-scheduler/config"
	"task-scheduler/internal/adjustment"
	adjustmentUC "task-scheduler/internal/adjustment/usecase"
	"task-scheduler/internal/infra"
	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	scheduleUC "task-scheduler/internal/schedule/usecase"
	"task-scheduler/pkg/log"
)

type rootOptions struct {
	user    string
	json    bool
	verbose bool
}

var errMissingUser = errors.New("--user is required")

func (o *rootOptions) scope() (model.Scope, error) {
	if o.user == "" {
		return model.Scope{}, errMissingUser
	}
	return model.Scope{UserID: o.user}, nil
}

// app is the wired pair of use cases a command runs against.
type app struct {
	schedule   schedule.UseCase
	adjustment adjustment.UseCase
	close      func() error
}

func newApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if opts.verbose {
		level = cfg.Logger.Level
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	inf, err := infra.Build(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}

	opt := scheduleUC.Options{CalendarLookaheadDays: cfg.GoogleCalendar.LookaheadDays}
	if inf.Calendar != nil {
		opt.Calendar = inf.Calendar
	}
	sched := scheduleUC.New(logger, inf.Repository, inf.Parser, inf.Finder, inf.Locker, opt)

	return &app{
		schedule:   sched,
		adjustment: adjustmentUC.New(logger, inf.Repository, inf.Finder, inf.Locker, sched, nil),
		close:      inf.Close,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// withApp builds the app for one command run and always releases it.
func withApp(ctx context.Context, opts *rootOptions, fn func(*app) error) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}
