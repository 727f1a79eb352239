package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mhalvorsen/taskdesk/internal/api/shared"
	"github.com/mhalvorsen/taskdesk/internal/domain"
	"github.com/mhalvorsen/taskdesk/internal/store"
)

// welcomeMessage is the plain-text body served on the root path.
const welcomeMessage = "Welcome to the Task Management API! Use /tasks to interact with tasks."

// CreateTaskRequest represents the request body for creating a new task
type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
}

// CreateTaskResponse represents the response data for a created task
type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"task_id"`
}

// TaskResponse represents the response data for a single task
type TaskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, the default logger is used.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// Home handles GET / requests
func (h *TaskHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(welcomeMessage)); err != nil {
		h.logger.Error("failed to write welcome response", "error", err)
	}
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Presence is the only request-level constraint; length is enforced
	// by the column and surfaces like any other statement failure.
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task description is required")
		return
	}

	id, err := h.taskStore.Create(r.Context(), req.Description)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{
		Message: "Task added successfully",
		TaskID:  id,
	})
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToDTOResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// DeleteTask handles DELETE /tasks/{id} requests.
// Deletion is idempotent: the response is the same whether or not a row
// matched the id.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskStore.DeleteByID(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// respondStoreError converts a persistence failure into the server-error
// response surface. The cause text goes into the body, matching the contract
// that unavailability errors carry the underlying reason.
func (h *TaskHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
}

// taskToDTOResponse converts a domain.Task to a TaskResponse
func taskToDTOResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
	}
}
