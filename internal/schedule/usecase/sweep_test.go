package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/timeblock"
)

func backlog() []model.Task {
	return []model.Task{
		{ID: "placed", UserID: testUser, Title: "已排", Date: "2024-05-31", Time: "09:00", EstimatedMinutes: 60, IsScheduled: true},
		{ID: "high", UserID: testUser, Title: "学习 Go", Priority: model.PriorityHigh},
		{ID: "medium", UserID: testUser, Title: "安装 IDE", Priority: model.PriorityMedium},
		{ID: "low", UserID: testUser, Title: "口语跟读", Priority: model.PriorityLow, Quadrant: 4},
		{ID: "due", UserID: testUser, Title: "交报告", Priority: model.PriorityLow, DueDate: "2024-06-05", EstimatedMinutes: 200},
		{ID: "stale", UserID: testUser, Title: "复盘", Priority: model.PriorityHigh, Date: "2024-05-31", Time: "10:00"},
		{ID: "done", UserID: testUser, Title: "完成了", Completed: true},
		{ID: "other", UserID: "u2", Title: "别人的"},
	}
}

func TestSweepUnscheduled(t *testing.T) {
	repo := newMemoryRepo(backlog()...)
	uc := newTestUseCase(t, at(2024, 5, 31, 6, 0), repo, nil)

	out, err := uc.SweepUnscheduled(context.Background(), testScope)
	if err != nil {
		t.Fatalf("SweepUnscheduled() error = %v", err)
	}
	if out.ScheduledCount != 5 {
		t.Fatalf("ScheduledCount = %d, want 5", out.ScheduledCount)
	}

	byID := map[string]schedule.SweptTask{}
	for _, s := range out.UpdatedTasks {
		byID[s.ID] = s
	}

	tests := []struct {
		id           string
		wantDate     string
		wantDuration int
	}{
		{"high", "2024-05-31", 60},
		{"medium", "2024-06-01", 30},
		{"low", "2024-06-02", 20},
		{"due", "2024-06-05", 120},
		{"stale", "2024-05-31", 60},
	}
	for _, tt := range tests {
		got, ok := byID[tt.id]
		if !ok {
			t.Errorf("%s was not swept", tt.id)
			continue
		}
		if got.Date != tt.wantDate || got.DurationMinutes != tt.wantDuration {
			t.Errorf("%s = %s/%d, want %s/%d", tt.id, got.Date, got.DurationMinutes, tt.wantDate, tt.wantDuration)
		}
	}

	// "学习" prefers 09:00, which the placed task holds.
	if got := byID["high"].Time; got == "09:00" || got == "09:30" {
		t.Errorf("high task landed on the occupied hour: %s", got)
	}
	if got := byID["medium"].Time; got != "19:00" {
		t.Errorf("install task time = %s, want 19:00", got)
	}

	stored, _ := repo.ListIncompleteTasks(context.Background(), testUser)
	var intervals []timeblock.Interval
	for _, task := range stored {
		if task.IsUnscheduled() {
			t.Errorf("task %s still unscheduled", task.ID)
		}
		iv, _ := task.Interval()
		intervals = append(intervals, iv)
	}
	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			if intervals[i].Overlaps(intervals[j]) {
				t.Errorf("%s overlaps %s", intervals[i], intervals[j])
			}
		}
	}
}

func TestSweepUnscheduledIsIdempotent(t *testing.T) {
	uc := newTestUseCase(t, at(2024, 5, 31, 6, 0), newMemoryRepo(backlog()...), nil)

	if _, err := uc.SweepUnscheduled(context.Background(), testScope); err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	out, err := uc.SweepUnscheduled(context.Background(), testScope)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if out.ScheduledCount != 0 {
		t.Errorf("second sweep scheduled %d tasks, want 0", out.ScheduledCount)
	}
}

func TestSweepUnscheduledErrors(t *testing.T) {
	now := at(2024, 5, 31, 6, 0)

	tests := []struct {
		name  string
		scope model.Scope
		repo  *failingRepo
		want  error
	}{
		{"missing user", model.Scope{}, &failingRepo{Repository: newMemoryRepo()}, schedule.ErrMissingUserID},
		{"list fails", testScope, &failingRepo{Repository: newMemoryRepo(), failList: true}, errStore},
		{"update fails", testScope, &failingRepo{Repository: newMemoryRepo(backlog()...), failUpdate: true}, errStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, now, tt.repo, nil)
			if _, err := uc.SweepUnscheduled(context.Background(), tt.scope); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBacklogDate(t *testing.T) {
	today := "2024-05-31"
	tests := []struct {
		name string
		task model.Task
		want string
	}{
		{"future due date", model.Task{DueDate: "2024-06-10"}, "2024-06-10"},
		{"due today", model.Task{DueDate: today, Priority: model.PriorityLow}, today},
		{"past due, high", model.Task{DueDate: "2024-05-01", Priority: model.PriorityHigh}, today},
		{"urgent quadrant", model.Task{Quadrant: 1, Priority: model.PriorityLow}, today},
		{"medium", model.Task{Priority: model.PriorityMedium}, "2024-06-01"},
		{"important quadrant", model.Task{Quadrant: 2}, "2024-06-01"},
		{"low", model.Task{Priority: model.PriorityLow, Quadrant: 4}, "2024-06-02"},
		{"planned date kept", model.Task{Date: "2024-06-03", Priority: model.PriorityHigh}, "2024-06-03"},
		{"past planned date ignored", model.Task{Date: "2024-05-20", Priority: model.PriorityLow}, "2024-06-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backlogDate(tt.task, today); got != tt.want {
				t.Errorf("backlogDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBacklogDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"下载资料", 30},
		{"阅读教材", 60},
		{"背诵课文", 45},
		{"安排下周", 30},
		{"听力训练", 45},
		{"口语", 20},
		{"随便", 60},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := backlogDuration(tt.text); got != tt.want {
				t.Errorf("backlogDuration(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSweepConcurrentSameUser(t *testing.T) {
	repo := newMemoryRepo(backlog()...)
	uc := newTestUseCase(t, at(2024, 5, 31, 6, 0), repo, nil)

	const n = 4
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.SweepUnscheduled(context.Background(), testScope)
			if err != nil {
				t.Errorf("SweepUnscheduled() error = %v", err)
				return
			}
			mu.Lock()
			total += out.ScheduledCount
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Serialized sweeps place each backlog task exactly once.
	if total != 5 {
		t.Errorf("scheduled across sweeps = %d, want 5", total)
	}
	stored, err := repo.ListIncompleteTasks(context.Background(), testUser)
	if err != nil {
		t.Fatalf("ListIncompleteTasks: %v", err)
	}
	assertNoOverlap(t, stored)
}
