package usecase

import (
	"context"

	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/gcalendar"
	"task-scheduler/pkg/locker"
	pkgLog "task-scheduler/pkg/log"
	"task-scheduler/pkg/metrics"
	"task-scheduler/pkg/occupancy"
)

// Calendar is the part of the calendar client the planner uses.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	parser        *datemath.Parser
	finder        *occupancy.Finder
	locker        locker.Locker
	metrics       *metrics.Metrics
	calendar      Calendar
	lookaheadDays int
}

// Options are the optional collaborators of the schedule UseCase.
type Options struct {
	Metrics *metrics.Metrics
	// Calendar adds busy intervals to the occupancy and receives mirrored tasks. May be nil.
	Calendar Calendar
	// CalendarLookaheadDays bounds the busy interval fetch. Defaults to 14.
	CalendarLookaheadDays int
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	parser *datemath.Parser,
	finder *occupancy.Finder,
	lk locker.Locker,
	opt Options,
) *implUseCase {
	if lk == nil {
		lk = locker.NewMemory()
	}
	if opt.CalendarLookaheadDays <= 0 {
		opt.CalendarLookaheadDays = 14
	}
	return &implUseCase{
		l:             l,
		repo:          repo,
		parser:        parser,
		finder:        finder,
		locker:        lk,
		metrics:       opt.Metrics,
		calendar:      opt.Calendar,
		lookaheadDays: opt.CalendarLookaheadDays,
	}
}
