package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task/repository"
	"task-scheduler/internal/task/repository/memory"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/gcalendar"
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

type mockCalendar struct {
	events    []gcalendar.Event
	listErr   error
	createErr error
	created   []gcalendar.CreateEventRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.events, m.listErr
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt"}, nil
}

// failingRepo wraps a repository and fails the selected operations.
type failingRepo struct {
	repository.Repository
	failList   bool
	failUpdate bool
	failInsert bool
}

var errStore = errors.New("store down")

func (r *failingRepo) ListIncompleteTasks(ctx context.Context, userID string) ([]model.Task, error) {
	if r.failList {
		return nil, errStore
	}
	return r.Repository.ListIncompleteTasks(ctx, userID)
}

func (r *failingRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if r.failUpdate {
		return model.Task{}, errStore
	}
	return r.Repository.UpdateTask(ctx, opt)
}

func (r *failingRepo) InsertManyTasks(ctx context.Context, opts []repository.InsertTaskOptions) ([]model.Task, error) {
	if r.failInsert {
		return nil, errStore
	}
	return r.Repository.InsertManyTasks(ctx, opts)
}

const testUser = "u1"

var testScope = model.Scope{UserID: testUser}

func newTestUseCase(t *testing.T, now time.Time, repo repository.Repository, cal Calendar) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	cfg := occupancy.DefaultConfig()
	cfg.Location = time.UTC
	cfg.Now = func() time.Time { return now }

	opt := Options{}
	if cal != nil {
		opt.Calendar = cal
	}
	return New(&mockLogger{}, repo, parser, occupancy.NewFinder(cfg), locker.NewMemory(), opt)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func newMemoryRepo(seed ...model.Task) repository.Repository {
	return memory.New(seed...)
}
