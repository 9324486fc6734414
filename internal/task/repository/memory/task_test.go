package memory_test

import (
	"context"
	"errors"
	"testing"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
	"task-scheduler/internal/task/repository/memory"
)

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := memory.New(
		model.Task{ID: "a", UserID: "u1", Title: "done", Date: "2024-06-01", Completed: true},
		model.Task{ID: "b", UserID: "u2", Title: "other user", Date: "2024-06-01"},
	)

	inserted, err := r.InsertManyTasks(ctx, []repo.InsertTaskOptions{
		{UserID: "u1", Title: "later", Date: "2024-06-03", Time: "09:00"},
		{UserID: "u1", Title: "earlier", Date: "2024-06-02", Time: "14:00"},
		{UserID: "u1", Title: "undated"},
	})
	if err != nil {
		t.Fatalf("InsertManyTasks() error: %v", err)
	}
	if len(inserted) != 3 || inserted[0].ID == "" {
		t.Fatalf("InsertManyTasks() = %+v", inserted)
	}

	incomplete, _ := r.ListIncompleteTasks(ctx, "u1")
	if len(incomplete) != 3 {
		t.Fatalf("ListIncompleteTasks() returned %d tasks, want 3", len(incomplete))
	}

	onOrAfter, _ := r.ListTasksOnOrAfter(ctx, "u1", "2024-06-01")
	if len(onOrAfter) != 3 || onOrAfter[0].Title != "done" || onOrAfter[1].Title != "earlier" {
		t.Errorf("ListTasksOnOrAfter() order = %v", titles(onOrAfter))
	}

	empty := ""
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: inserted[0].ID, UserID: "u1", Time: &empty})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.Time != "" || updated.Date != "2024-06-03" {
		t.Errorf("UpdateTask() = %+v, want time cleared and date kept", updated)
	}

	if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: inserted[0].ID, UserID: "u2", Time: &empty}); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("UpdateTask() for another user error = %v, want ErrNotFound", err)
	}
	if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: inserted[0].ID, UserID: "u1"}); !errors.Is(err, repo.ErrEmptyUpdate) {
		t.Errorf("UpdateTask() without fields error = %v, want ErrEmptyUpdate", err)
	}
}

func titles(ts []model.Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Title
	}
	return out
}
