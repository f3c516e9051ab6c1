package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jmvillal/tasktrack/internal/domain"
	"github.com/jmvillal/tasktrack/internal/platform/logger"
	"github.com/jmvillal/tasktrack/internal/redact"
	"github.com/jmvillal/tasktrack/internal/store"
)

// Fixed messages carried by classified errors, one per operation.
const (
	msgTaskExists    = "Task already exists"
	msgTaskNotFound  = "Task not found"
	msgErrCreating   = "Error creating task"
	msgErrRetrieving = "Error retrieving tasks"
	msgErrSearching  = "Error searching task"
	msgErrUpdating   = "Error updating task"
	msgErrDeleting   = "Error deleting task"
)

// TaskCache is the optional read-through cache for task detail lookups.
// Implementations must treat a miss as (nil, false, nil); the service treats
// every cache error as a miss and falls through to the store.
type TaskCache interface {
	GetTask(ctx context.Context, id string) (*domain.Task, bool, error)
	SetTask(ctx context.Context, task *domain.Task) error
	Invalidate(ctx context.Context, id string) error
}

// TaskService orchestrates the task lifecycle: create, list, fetch, update,
// and soft-delete, with invariant enforcement and error classification.
// Every error returned by a public operation is a *TaskError.
type TaskService interface {
	// Create stores a new task for userID and returns its assigned ID.
	// Fails with a Conflict error when a non-deleted task with the same
	// title already exists for the user.
	Create(ctx context.Context, userID string, req TaskRequest) (string, error)

	// List returns one page of the user's non-deleted tasks, optionally
	// filtered by status, plus page metadata computed from a concurrent
	// total count.
	List(ctx context.Context, userID string, params QueryParams) (*TaskPage, error)

	// GetByID returns the full response for a task. Soft-deleted tasks are
	// reported as not found.
	GetByID(ctx context.Context, taskID string) (*TaskResponse, error)

	// Update replaces a task's fields from the request, keyed by the
	// existing identifier. The existence check deliberately does not
	// filter soft-deleted tasks.
	Update(ctx context.Context, taskID string, req TaskRequest) (*TaskResponse, error)

	// Delete soft-deletes a task, stamping the last-modified timestamp.
	// Like Update, it finds soft-deleted tasks, making a second delete
	// idempotent rather than an error.
	Delete(ctx context.Context, taskID string) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	cache     TaskCache // nil when caching is disabled
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService over the given store.
// cache may be nil to disable detail-lookup caching.
func NewTaskService(
	taskStore store.TaskStore,
	cache TaskCache,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("taskStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		cache:     cache,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create.
// The in-service duplicate check is a fast path; the store's unique index on
// (user_id, title) for non-deleted tasks is the authority, and a duplicate
// surfacing from Save maps to the same Conflict error.
func (s *taskServiceImpl) Create(ctx context.Context, userID string, req TaskRequest) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.taskStore.FindByTitleAndUser(ctx, req.Title, userID)
	if err == nil {
		log.Debug("task already exists",
			slog.String("user_id", userID))
		return "", NewConflictError(msgTaskExists)
	}
	if !store.IsNotFoundError(err) {
		log.Error("duplicate check failed",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		return "", classify(err, msgErrCreating)
	}

	req.UserID = userID
	task, err := createOf(req)
	if err != nil {
		return "", classify(err, msgErrCreating)
	}

	saved, err := s.taskStore.Save(ctx, task)
	if err != nil {
		if store.IsDuplicateError(err) {
			// Lost the race against a concurrent create for the same
			// (title, user); the unique index caught it.
			log.Debug("duplicate title caught by unique index",
				slog.String("user_id", userID))
			return "", NewConflictError(msgTaskExists)
		}
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		return "", classify(err, msgErrCreating)
	}

	log.Info("task created",
		slog.String("task_id", saved.ID),
		slog.String("user_id", userID))
	return saved.ID, nil
}

// List implements TaskService.List.
// The data page and the total count are fetched concurrently and joined
// before the result is produced.
func (s *taskServiceImpl) List(ctx context.Context, userID string, params QueryParams) (*TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	pageReq := store.PageRequest{
		Page:          params.Page,
		Size:          params.Size,
		SortBy:        params.SortBy,
		SortDirection: params.SortDirection,
	}

	var (
		tasks []*domain.Task
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.taskStore.FindPageByUser(gctx, userID, pageReq)
		if err != nil {
			return err
		}
		tasks = page
		return nil
	})

	g.Go(func() error {
		var (
			count int64
			err   error
		)
		if params.Status == "" {
			count, err = s.taskStore.CountByUser(gctx, userID)
		} else {
			count, err = s.taskStore.CountByUserAndStatus(gctx, userID, domain.Status(params.Status))
		}
		if err != nil {
			return err
		}
		total = count
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to retrieve tasks",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID))
		// Cause retained for logging only on the list path.
		var taskErr *TaskError
		if errors.As(err, &taskErr) {
			return nil, taskErr
		}
		return nil, NewInternalError(msgErrRetrieving, nil)
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		if task.Deleted {
			continue
		}
		if params.Status != "" && string(task.Status) != params.Status {
			continue
		}
		responses = append(responses, responseOf(task))
	}

	log.Debug("tasks retrieved",
		slog.String("user_id", userID),
		slog.Int("returned", len(responses)),
		slog.Int64("total", total))

	return &TaskPage{
		Tasks:  responses,
		Paging: buildPageInfo(total, params),
	}, nil
}

// GetByID implements TaskService.GetByID.
func (s *taskServiceImpl) GetByID(ctx context.Context, taskID string) (*TaskResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.lookupCached(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError(msgTaskNotFound)
		}
		log.Error("failed to search task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
		// Original cause retained for logging only, never chained here.
		return nil, NewInternalError(msgErrSearching, nil)
	}

	if task.Deleted {
		return nil, NewNotFoundError(msgTaskNotFound)
	}

	resp := withDetailsOf(task)
	return &resp, nil
}

// Update implements TaskService.Update.
// The existence check does not filter soft-deleted tasks: an update may
// resurrect a deleted task's fields. Creation audit fields are carried over
// from the existing entity and never taken from the request.
func (s *taskServiceImpl) Update(ctx context.Context, taskID string, req TaskRequest) (*TaskResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.taskStore.FindByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewNotFoundError(msgTaskNotFound)
		}
		log.Error("failed to load task for update",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
		return nil, classify(err, msgErrUpdating)
	}

	task, err := updateOf(req)
	if err != nil {
		return nil, classify(err, msgErrUpdating)
	}

	// Full-field replace keyed by the existing identifier.
	task.ID = existing.ID
	task.CreatedDate = existing.CreatedDate
	task.CreatedBy = existing.CreatedBy
	if req.Status == "" {
		task.Status = existing.Status
	}

	saved, err := s.taskStore.Save(ctx, task)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
		return nil, classify(err, msgErrUpdating)
	}

	s.invalidate(ctx, saved.ID)

	log.Info("task updated", slog.String("task_id", saved.ID))
	resp := withDetailsOf(saved)
	return &resp, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, taskID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.taskStore.FindByID(ctx, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return NewNotFoundError(msgTaskNotFound)
		}
		log.Error("failed to load task for delete",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
		return NewInternalError(msgErrDeleting, nil)
	}

	existing.MarkDeleted()

	if _, err := s.taskStore.Save(ctx, existing); err != nil {
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
		return NewInternalError(msgErrDeleting, nil)
	}

	s.invalidate(ctx, taskID)

	log.Info("task deleted", slog.String("task_id", taskID))
	return nil
}

// lookupCached reads a task through the cache when one is configured.
// Cache failures degrade to store reads; a fresh store hit repopulates
// the cache best-effort.
func (s *taskServiceImpl) lookupCached(ctx context.Context, taskID string) (*domain.Task, error) {
	if s.cache == nil {
		return s.taskStore.FindByID(ctx, taskID)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	task, hit, err := s.cache.GetTask(ctx, taskID)
	if err != nil {
		log.Warn("cache read failed, falling through to store",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
	} else if hit {
		return task, nil
	}

	task, err = s.taskStore.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTask(ctx, task); err != nil {
		log.Warn("cache write failed",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
	}

	return task, nil
}

// invalidate drops a task from the cache after a mutation, best-effort.
func (s *taskServiceImpl) invalidate(ctx context.Context, taskID string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, taskID); err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Warn("cache invalidation failed",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID))
	}
}
