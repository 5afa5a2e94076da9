package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"otsus/internal/decision"
	"otsus/pkg/platform/httputil"
	"otsus/pkg/requestcontext"
)

// Service defines the interface for decision operations.
type Service interface {
	Evaluate(ctx context.Context, req decision.EvaluateRequest) (decision.Decision, error)
}

// Handler wires the loan decision endpoint to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a decision handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts decision endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/loan/decision", h.HandleEvaluate)
}

// HandleEvaluate handles POST /loan/decision requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Evaluate(ctx, decision.EvaluateRequest{
		PersonalCode: req.PersonalCode,
		LoanAmount:   req.LoanAmount,
		LoanPeriod:   req.LoanPeriod,
		Country:      req.Country,
	})
	if err != nil {
		if kind, rejected := decision.RejectionKind(err); rejected {
			h.logger.InfoContext(ctx, "loan rejected",
				"request_id", requestID,
				"rejection", kind,
				"client_ip", requestcontext.ClientIP(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		} else {
			h.logger.ErrorContext(ctx, "decision evaluation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "loan approved",
		"request_id", requestID,
		"amount", result.Amount,
		"period", result.Period,
		"client_ip", requestcontext.ClientIP(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromDecision(result))
}
