package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/Ralle1976/botcrafter/internal/api"
	apiMiddleware "github.com/Ralle1976/botcrafter/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Every gateway endpoint sits behind the static
// token auth; only /health is public.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	taskHandler := api.NewTaskHandler(app.taskService)
	eventHandler := api.NewEventHandler(app.eventService)
	adminHandler := api.NewAdminHandler(app.adminStore, app.schema)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.config.Auth.APIToken)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// Task queue endpoints
		r.Post("/add_task", taskHandler.AddTask)
		r.Get("/get_pending_tasks", taskHandler.GetPendingTasks)
		r.Get("/get_high_priority_tasks", taskHandler.GetHighPriorityTasks)
		r.Post("/update_task_status", taskHandler.UpdateTaskStatus)
		r.Post("/mark_task_intensive", taskHandler.MarkTaskIntensive)

		// Event log endpoints
		r.Post("/log_event", eventHandler.LogEvent)
		r.Get("/get_logs", eventHandler.GetLogs)

		// Generic table endpoints for operator access
		r.Get("/init-db", adminHandler.InitDB)
		r.Post("/add_entry", adminHandler.AddEntry)
		r.Get("/get_entries", adminHandler.GetEntries)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
