package router

import (
	"database/sql"
	"net/http"

	"github.com/actionflow/actionflow/handlers"
	"github.com/actionflow/actionflow/middleware"
	"github.com/actionflow/actionflow/store"
)

func NewRouter(db *sql.DB) http.Handler {
	st := store.New(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st)
	resourceHandler := handlers.NewActionHandler(st, store.ResourceActions)
	activityHandler := handlers.NewActionHandler(st, store.ActivityActions)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))

	// Resource actions
	mux.HandleFunc("GET /resource-actions/{userId}", middleware.WithLogging(resourceHandler.List))
	mux.HandleFunc("POST /resource-actions", middleware.WithLogging(resourceHandler.Create))
	mux.HandleFunc("PUT /resource-actions/{id}", middleware.WithLogging(resourceHandler.Update))
	mux.HandleFunc("DELETE /resource-actions/{id}", middleware.WithLogging(resourceHandler.Delete))

	// Activity actions
	mux.HandleFunc("GET /activity-actions/{userId}", middleware.WithLogging(activityHandler.List))
	mux.HandleFunc("POST /activity-actions", middleware.WithLogging(activityHandler.Create))
	mux.HandleFunc("PUT /activity-actions/{id}", middleware.WithLogging(activityHandler.Update))
	mux.HandleFunc("DELETE /activity-actions/{id}", middleware.WithLogging(activityHandler.Delete))

	// Root endpoint. {$} keeps this from shadowing other paths, so an
	// unsupported verb on a real route still gets its 405.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("actionflow API v1"))
	})

	// CORS wraps the whole mux so preflight requests get answered before
	// method matching would 405 them.
	return middleware.CORS(mux)
}
