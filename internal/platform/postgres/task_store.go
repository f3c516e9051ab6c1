package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmvillal/tasktrack/internal/domain"
	"github.com/jmvillal/tasktrack/internal/platform/logger"
	"github.com/jmvillal/tasktrack/internal/redact"
	"github.com/jmvillal/tasktrack/internal/store"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// Columns the list endpoint may sort by, keyed by their API names.
var sortColumns = map[string]string{
	"dueDate":          "due_date",
	"createdDate":      "created_date",
	"lastModifiedDate": "last_modified_date",
	"title":            "title",
	"status":           "status",
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation. The only unique constraint besides the primary key
// is the partial index on (user_id, title) WHERE NOT deleted, and Save
// resolves primary-key conflicts via ON CONFLICT, so a 23505 here always
// means a duplicate title.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

const taskColumns = `id, user_id, title, description, due_date, status,
		created_date, created_by, last_modified_date, last_modified_by, deleted`

// scanTask reads one task row. last_modified columns are nullable and map
// to zero values on the entity.
func scanTask(row interface{ Scan(dest ...any) error }) (*domain.Task, error) {
	var task domain.Task
	var status string
	var lastModifiedDate sql.NullTime
	var lastModifiedBy sql.NullString

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&status,
		&task.CreatedDate,
		&task.CreatedBy,
		&lastModifiedDate,
		&lastModifiedBy,
		&task.Deleted,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.Status(status)
	if lastModifiedDate.Valid {
		task.LastModifiedDate = lastModifiedDate.Time
	}
	if lastModifiedBy.Valid {
		task.LastModifiedBy = lastModifiedBy.String
	}

	return &task, nil
}

// FindByID implements store.TaskStore.FindByID
// It retrieves a task by its unique ID regardless of the deleted flag;
// soft-delete filtering is left to the service.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id))
		return nil, err
	}

	return task, nil
}

// FindByTitleAndUser implements store.TaskStore.FindByTitleAndUser
// It retrieves the non-deleted task with the given title owned by userID.
// Returns store.ErrTaskNotFound if none exists.
func (s *PostgresTaskStore) FindByTitleAndUser(
	ctx context.Context,
	title, userID string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE title = $1 AND user_id = $2 AND NOT deleted
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, title, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by title and user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		return nil, err
	}

	return task, nil
}

// CountByUser implements store.TaskStore.CountByUser
// It returns the number of non-deleted tasks owned by userID.
func (s *PostgresTaskStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = $1 AND NOT deleted
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		return 0, err
	}

	return count, nil
}

// CountByUserAndStatus implements store.TaskStore.CountByUserAndStatus
// It returns the number of non-deleted tasks owned by userID with the given status.
func (s *PostgresTaskStore) CountByUserAndStatus(
	ctx context.Context,
	userID string,
	status domain.Status,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = $1 AND status = $2 AND NOT deleted
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, userID, string(status)).Scan(&count); err != nil {
		log.Error("failed to count tasks by status",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID),
			slog.String("status", string(status)))
		return 0, err
	}

	return count, nil
}

// FindPageByUser implements store.TaskStore.FindPageByUser
// It retrieves one page of the user's non-deleted tasks ordered per the page
// request. Unknown sort fields fall back to due_date.
func (s *PostgresTaskStore) FindPageByUser(
	ctx context.Context,
	userID string,
	page store.PageRequest,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page = page.Normalize()

	column, ok := sortColumns[page.SortBy]
	if !ok {
		column = "due_date"
	}
	direction := "DESC"
	if page.SortDirection == store.SortAsc {
		direction = "ASC"
	}

	// column and direction come from whitelists above, never from input.
	query := fmt.Sprintf(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE user_id = $1 AND NOT deleted
		ORDER BY %s %s
		LIMIT $2 OFFSET $3
	`, column, direction)

	rows, err := s.db.QueryContext(ctx, query, userID, page.Size, page.Offset())
	if err != nil {
		log.Error("failed to query task page",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", redact.Error(err)))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", redact.Error(err)))
		return nil, err
	}

	return tasks, nil
}

// Save implements store.TaskStore.Save
// It inserts or replaces the task keyed by its ID, assigning a new UUID when
// the ID is empty. The persisted task is returned.
// Returns store.ErrTitleExists when the insert violates the per-user unique
// title index on non-deleted tasks.
func (s *PostgresTaskStore) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during save",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, err
	}

	saved := *task
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}

	var lastModifiedDate sql.NullTime
	if !saved.LastModifiedDate.IsZero() {
		lastModifiedDate = sql.NullTime{Time: saved.LastModifiedDate.UTC(), Valid: true}
	}
	var lastModifiedBy sql.NullString
	if saved.LastModifiedBy != "" {
		lastModifiedBy = sql.NullString{String: saved.LastModifiedBy, Valid: true}
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, due_date, status,
			created_date, created_by, last_modified_date, last_modified_by, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			due_date = EXCLUDED.due_date,
			status = EXCLUDED.status,
			last_modified_date = EXCLUDED.last_modified_date,
			last_modified_by = EXCLUDED.last_modified_by,
			deleted = EXCLUDED.deleted
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		saved.ID,
		saved.UserID,
		saved.Title,
		saved.Description,
		saved.DueDate.UTC(),
		string(saved.Status),
		saved.CreatedDate.UTC(),
		saved.CreatedBy,
		lastModifiedDate,
		lastModifiedBy,
		saved.Deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate title for user",
				slog.String("user_id", saved.UserID))
			return nil, store.ErrTitleExists
		}

		log.Error("failed to save task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", saved.ID),
			slog.String("user_id", saved.UserID))
		return nil, err
	}

	log.Debug("task saved",
		slog.String("task_id", saved.ID),
		slog.String("user_id", saved.UserID),
		slog.String("status", string(saved.Status)))
	return &saved, nil
}
