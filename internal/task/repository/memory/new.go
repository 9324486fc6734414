package memory

import (
	"sync"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string
	now   func() time.Time
}

// New creates an in-process task Repository, used when no database is configured and in tests.
func New(seed ...model.Task) repository.Repository {
	r := &implRepository{
		tasks: make(map[string]model.Task),
		now:   time.Now,
	}
	for _, t := range seed {
		r.put(t)
	}
	return r
}

func (r *implRepository) put(t model.Task) {
	if _, ok := r.tasks[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t
}
