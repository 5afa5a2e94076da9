package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	decisionHandler "otsus/internal/decision/handler"
	"otsus/pkg/platform/middleware"
)

// NewRouter wires all public endpoints behind the shared middleware chain.
// Transport concerns stay here; handlers delegate to domain services.
func NewRouter(decisions *decisionHandler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	decisions.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
