package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/numbox/random-number-service/internal/httpapi/handlers"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	RootHandler    http.HandlerFunc
	HealthHandler  http.HandlerFunc
	RandomHandler  http.HandlerFunc
	MetricsHandler http.Handler
	RequestLogger  func(http.Handler) http.Handler
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if deps.RequestLogger != nil {
		r.Use(deps.RequestLogger)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", deps.RootHandler)
	r.Get("/health", deps.HealthHandler)

	r.Get("/random/", deps.RandomHandler)
	// The index payload advertises /random; the endpoint itself lives
	// at /random/, so redirect the bare path.
	r.Get("/random", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/random/", http.StatusTemporaryRedirect)
	})

	r.Get("/docs", handlers.SwaggerUI)
	r.Get("/redoc", handlers.ReDoc)
	r.Get("/openapi.json", handlers.OpenAPIJSON)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
