package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmvillal/tasktrack/internal/api"
	apiMiddleware "github.com/jmvillal/tasktrack/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware. The identity middleware guards the task routes only; the
// health endpoint stays open.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := api.NewTaskHandler(app.taskService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiMiddleware.IdentityMiddleware)
		r.Use(apiMiddleware.AuditMiddleware)

		r.Post("/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Put("/tasks/{id}", taskHandler.UpdateTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
