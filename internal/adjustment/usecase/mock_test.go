package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-scheduler/internal/model"
	schedusecase "task-scheduler/internal/schedule/usecase"
	"task-scheduler/internal/task/repository"
	"task-scheduler/internal/task/repository/memory"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/locker"
	"task-scheduler/pkg/occupancy"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type failingRepo struct {
	repository.Repository
}

var errStore = errors.New("store down")

func (r *failingRepo) ListIncompleteTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return nil, errStore
}

const testUser = "u1"

var testScope = model.Scope{UserID: testUser}

// newTestUseCase wires the adjuster to a real sweeper sharing its locker.
func newTestUseCase(t *testing.T, now time.Time, repo repository.Repository) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	cfg := occupancy.DefaultConfig()
	cfg.Location = time.UTC
	cfg.Now = func() time.Time { return now }
	finder := occupancy.NewFinder(cfg)
	lk := locker.NewMemory()

	sweeper := schedusecase.New(&mockLogger{}, repo, parser, finder, lk, schedusecase.Options{})
	return New(&mockLogger{}, repo, finder, lk, sweeper, nil)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func storedByID(t *testing.T, repo repository.Repository) map[string]model.Task {
	t.Helper()
	tasks, err := repo.ListIncompleteTasks(context.Background(), testUser)
	if err != nil {
		t.Fatalf("ListIncompleteTasks: %v", err)
	}
	out := make(map[string]model.Task, len(tasks))
	for _, task := range tasks {
		out[task.ID] = task
	}
	return out
}

func newMemoryRepo(seed ...model.Task) repository.Repository {
	return memory.New(seed...)
}
