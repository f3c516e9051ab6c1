package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jmvillal/tasktrack/internal/api/shared"
	"github.com/jmvillal/tasktrack/internal/domain"
	"github.com/jmvillal/tasktrack/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// CreateTask handles POST /api/v1/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID := shared.GetUserID(r.Context())
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID not found")
		return
	}

	var req service.TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	dueDate, err := time.Parse(service.DueDateLayout, req.DueDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due date format")
		return
	}
	if !dueDate.After(time.Now()) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Due date must be in the future")
		return
	}

	taskID, err := h.taskService.Create(r.Context(), userID, req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskIDResponse{ID: taskID})
}

// ListTasks handles GET /api/v1/tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := shared.GetUserID(r.Context())
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID not found")
		return
	}

	params, err := parseQueryParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.taskService.List(r.Context(), userID, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithPage(w, r, http.StatusOK, page.Tasks, page.Paging)
}

// GetTask handles GET /api/v1/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return
	}

	resp, err := h.taskService.GetByID(r.Context(), taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// UpdateTask handles PUT /api/v1/tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID := shared.GetUserID(r.Context())
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "User ID not found")
		return
	}

	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return
	}

	var req service.TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if _, err := time.Parse(service.DueDateLayout, req.DueDate); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due date format")
		return
	}

	resp, err := h.taskService.Update(r.Context(), taskID, req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// DeleteTask handles DELETE /api/v1/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")
	if taskID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseQueryParams reads the List query parameters, applying the documented
// defaults and rejecting malformed values.
func parseQueryParams(r *http.Request) (service.QueryParams, error) {
	params := service.DefaultQueryParams()
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return params, errInvalidQueryParam("page")
		}
		params.Page = page
	}

	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return params, errInvalidQueryParam("size")
		}
		params.Size = size
	}

	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return params, errInvalidQueryParam("status")
		}
		params.Status = string(status)
	}

	if raw := q.Get("sortBy"); raw != "" {
		params.SortBy = raw
	}
	if raw := q.Get("sortDirection"); raw != "" {
		params.SortDirection = raw
	}

	return params, nil
}

type queryParamError struct {
	name string
}

func (e queryParamError) Error() string {
	return "Invalid query parameter: " + e.name
}

func errInvalidQueryParam(name string) error {
	return queryParamError{name: name}
}
