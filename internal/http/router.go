package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sqlcoach/internal/engine"
	"sqlcoach/internal/handlers"
	"sqlcoach/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine         engine.Engine
	VectorStore    vectorstore.VectorStore
	CollectionName string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	trainHandler := handlers.NewTrainHandler(deps.Engine)
	queryHandler := handlers.NewQueryHandler(deps.Engine)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)

	r.Route("/train", func(r chi.Router) {
		r.Post("/auto", trainHandler.Auto)
		r.Post("/ddl", trainHandler.DDL)
		r.Post("/documentation", trainHandler.Documentation)
		r.Post("/question-sql", trainHandler.QuestionSQL)
	})

	r.Method(http.MethodPost, "/query", queryHandler)
	r.Method(http.MethodGet, "/health", healthHandler)

	return r
}
