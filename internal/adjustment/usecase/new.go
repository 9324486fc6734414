package usecase

import (
	"context"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/locker"
	pkgLog "task-scheduler/pkg/log"
	"task-scheduler/pkg/metrics"
	"task-scheduler/pkg/occupancy"
)

// Sweeper gives backlog tasks a slot. It takes the user lock itself.
type Sweeper interface {
	SweepUnscheduled(ctx context.Context, sc model.Scope) (schedule.SweepOutput, error)
}

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	finder  *occupancy.Finder
	locker  locker.Locker
	sweeper Sweeper
	metrics *metrics.Metrics
}

// New creates a new adjustment UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	finder *occupancy.Finder,
	lk locker.Locker,
	sweeper Sweeper,
	m *metrics.Metrics,
) *implUseCase {
	if lk == nil {
		lk = locker.NewMemory()
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		finder:  finder,
		locker:  lk,
		sweeper: sweeper,
		metrics: m,
	}
}
