package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

const taskColumns = `id, user_id, collection_id, title, description, priority, quadrant,
	task_date, task_time, estimated_minutes, due_date, time_block_type, is_scheduled, completed,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var t model.Task
	err := s.Scan(
		&t.ID, &t.UserID, &t.CollectionID, &t.Title, &t.Description, &t.Priority, &t.Quadrant,
		&t.Date, &t.Time, &t.EstimatedMinutes, &t.DueDate, &t.TimeBlockType, &t.IsScheduled, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *implRepository) listTasks(ctx context.Context, method, where string, args ...any) ([]model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY task_date, task_time, created_at`, taskColumns, where)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), describe(err))
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), describe(err))
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// ListIncompleteTasks returns every incomplete task of the user.
func (r *implRepository) ListIncompleteTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return r.listTasks(ctx, "ListIncompleteTasks", "user_id = $1 AND completed = FALSE", userID)
}

// ListTasksOnOrAfter returns the user's dated tasks on or after date.
// Dates are stored as YYYY-MM-DD so text comparison orders them correctly.
func (r *implRepository) ListTasksOnOrAfter(ctx context.Context, userID string, date string) ([]model.Task, error) {
	return r.listTasks(ctx, "ListTasksOnOrAfter", "user_id = $1 AND task_date <> '' AND task_date >= $2", userID, date)
}

// UpdateTask writes the non-nil fields of opt and returns the updated row.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if opt.IsEmpty() {
		return model.Task{}, repo.ErrEmptyUpdate
	}

	sets, args := buildUpdateQuery(opt, r.now())
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		sets, len(args)+1, len(args)+2, taskColumns)
	args = append(args, opt.ID, opt.UserID)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), describe(err))
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

const insertQuery = `
	INSERT INTO tasks (id, user_id, collection_id, title, description, priority, quadrant,
		task_date, task_time, estimated_minutes, due_date, time_block_type, is_scheduled, completed,
		created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, FALSE, $14, $14)
	RETURNING ` + taskColumns

func insertArgs(opt repo.InsertTaskOptions, now any) []any {
	return []any{
		uuid.NewString(), opt.UserID, opt.CollectionID, opt.Title, opt.Description, string(opt.Priority), opt.Quadrant,
		opt.Date, opt.Time, opt.EstimatedMinutes, opt.DueDate, string(opt.TimeBlockType), opt.IsScheduled, now,
	}
}

// InsertTask inserts one task and returns the stored row.
func (r *implRepository) InsertTask(ctx context.Context, opt repo.InsertTaskOptions) (model.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, insertQuery, insertArgs(opt, r.now())...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertTask"), describe(err))
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// InsertManyTasks inserts all tasks in one transaction. Either every row is stored or none.
func (r *implRepository) InsertManyTasks(ctx context.Context, opts []repo.InsertTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("InsertManyTasks"), describe(err))
		return nil, repo.ErrFailedToInsert
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s prepare: %v", r.dsn("InsertManyTasks"), describe(err))
		return nil, repo.ErrFailedToInsert
	}
	defer stmt.Close()

	now := r.now()
	tasks := make([]model.Task, 0, len(opts))
	for i, opt := range opts {
		t, err := scanTask(stmt.QueryRowContext(ctx, insertArgs(opt, now)...))
		if err != nil {
			r.l.Errorf(ctx, "%s row %d: %v", r.dsn("InsertManyTasks"), i, describe(err))
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InsertManyTasks"), describe(err))
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// describe adds the SQLSTATE to driver errors.
func describe(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Sprintf("%s (sqlstate %s, %s)", pqErr.Message, pqErr.Code, pqErr.Code.Name())
	}
	return err.Error()
}
