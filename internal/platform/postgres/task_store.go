package postgres

import (
	"context"
	"log/slog"

	"github.com/mhalvorsen/taskdesk/internal/domain"
	"github.com/mhalvorsen/taskdesk/internal/platform/logger"
	"github.com/mhalvorsen/taskdesk/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database pool or transaction that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
// It inserts one row and returns the id the database assigned to it.
func (s *TaskStore) Create(ctx context.Context, description string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task := &domain.Task{Description: description}
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return 0, err
	}

	query := `
		INSERT INTO tasks (description)
		VALUES ($1)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, description).Scan(&id)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	log.Info("task created successfully", slog.Int64("task_id", id))
	return id, nil
}

// List implements store.TaskStore.List.
// Rows come back ordered by id, which matches insertion order because ids
// are assigned from a monotonic sequence.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, description
		FROM tasks
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	// Non-nil so an empty table serializes as [] rather than null.
	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Description); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("failed while iterating task rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("tasks listed successfully", slog.Int("count", len(tasks)))
	return tasks, nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// Deleting an id that no longer exists is not an error; the affected-row
// count is only logged so the two cases stay observable to operators.
func (s *TaskStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	log.Debug("task delete executed",
		slog.Int64("task_id", id),
		slog.Int64("rows_affected", rowsAffected))
	return nil
}
