package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"maturity-assessment-service/internal/app"
)

// maxImportBytes bounds an uploaded history CSV.
const maxImportBytes = 10 << 20

// Server exposes the assessment use cases to the rendering layer.
type Server struct {
	service *app.AssessmentService
	ws      *WSHandler
	router  *chi.Mux
}

func NewServer(service *app.AssessmentService) *Server {
	s := &Server{
		service: service,
		ws:      NewWSHandler(service),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ws", s.ws.ServeWS)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/catalog", s.handleCatalog)
		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleEndSession)
			r.Put("/date", s.handleSetDate)
			r.Put("/responses/{questionId}", s.handleSetAnswer)
			r.Delete("/responses", s.handleClear)
			r.Get("/scores", s.handleScores)
			r.Post("/assessments", s.handleSave)
			r.Get("/history", s.handleHistory)
			r.Get("/history/series", s.handleSeries)
			r.Get("/history.csv", s.handleExport)
			r.Post("/history.csv", s.handleImport)
			r.Get("/trend", s.handleTrend)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
