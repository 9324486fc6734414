package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

func (r *implRepository) list(keep func(model.Task) bool) []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Task
	for _, id := range r.order {
		if t := r.tasks[id]; keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r *implRepository) ListIncompleteTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return r.list(func(t model.Task) bool {
		return t.UserID == userID && !t.Completed
	}), nil
}

func (r *implRepository) ListTasksOnOrAfter(ctx context.Context, userID string, date string) ([]model.Task, error) {
	return r.list(func(t model.Task) bool {
		return t.UserID == userID && t.Date != "" && t.Date >= date
	}), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if opt.IsEmpty() {
		return model.Task{}, repo.ErrEmptyUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, repo.ErrNotFound
	}
	opt.Apply(&t)
	t.UpdatedAt = r.now()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *implRepository) InsertTask(ctx context.Context, opt repo.InsertTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(opt), nil
}

func (r *implRepository) InsertManyTasks(ctx context.Context, opts []repo.InsertTaskOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		out = append(out, r.insert(opt))
	}
	return out, nil
}

func (r *implRepository) insert(opt repo.InsertTaskOptions) model.Task {
	now := r.now()
	t := model.Task{
		ID:               uuid.NewString(),
		UserID:           opt.UserID,
		CollectionID:     opt.CollectionID,
		Title:            opt.Title,
		Description:      opt.Description,
		Priority:         opt.Priority,
		Quadrant:         opt.Quadrant,
		Date:             opt.Date,
		Time:             opt.Time,
		EstimatedMinutes: opt.EstimatedMinutes,
		DueDate:          opt.DueDate,
		TimeBlockType:    opt.TimeBlockType,
		IsScheduled:      opt.IsScheduled,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.put(t)
	return t
}
