package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mhalvorsen/taskdesk/internal/store"

	apiMiddleware "github.com/mhalvorsen/taskdesk/internal/api/middleware"
)

// NewRouter creates and configures the application router with all routes
// and middleware. The returned handler is ready to serve.
func NewRouter(taskStore store.TaskStore, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := NewTaskHandler(taskStore, logger)

	// Register routes. The id pattern only admits integers, so a
	// non-numeric id never reaches the handler.
	r.Get("/", taskHandler.Home)
	r.Post("/tasks", taskHandler.CreateTask)
	r.Get("/tasks", taskHandler.ListTasks)
	r.Delete("/tasks/{id:[0-9]+}", taskHandler.DeleteTask)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
