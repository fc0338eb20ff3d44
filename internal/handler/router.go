package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tracking_service/internal/logging"
)

// Service is everything the HTTP API calls.
type Service interface {
	IdentityService
	DeadlineService
	SubmissionService
	ClassService
	StudentService
	AdminService
}

func NewRouter(logger *logging.Logger, svc Service, pinger Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.NewHTTPMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20)
	})

	r.Get("/healthz", healthHandler(pinger))

	r.Route("/api", func(r chi.Router) {
		r.Use(NewActorMiddleware(svc))

		r.Route("/deadlines", NewDeadlineHandler(svc).RegisterRoutes)
		r.Route("/submissions", NewSubmissionHandler(svc).RegisterRoutes)
		r.Route("/classes", NewClassHandler(svc).RegisterRoutes)
		r.Route("/students", NewStudentHandler(svc).RegisterRoutes)
		r.Route("/admin", NewAdminHandler(svc).RegisterRoutes)
	})

	return r
}

func healthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Error(ctx, "database ping failed", zap.Error(err))
			}
			writeErrorJSON(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}
