package test

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"otsus/internal/decision"
	decisionHandler "otsus/internal/decision/handler"
	decisionMetrics "otsus/internal/decision/metrics"
	httptransport "otsus/internal/transport/http"
	"otsus/pkg/testutil"
)

var (
	routerOnce sync.Once
	router     http.Handler
)

// newRouter wires the full stack the way cmd/server does. Built once:
// prometheus metrics register on the process-wide default registry.
func newRouter() http.Handler {
	routerOnce.Do(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service := decision.NewService(logger, decisionMetrics.New())
		handler := decisionHandler.New(service, logger)
		router = httptransport.NewRouter(handler)
	})
	return router
}

func TestRouter(t *testing.T) {
	testutil.Given(t, "the fully wired HTTP router", func(t *testing.T) {
		r := newRouter()

		testutil.When(t, "checking service health", func(t *testing.T) {
			rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/healthz", nil))

			testutil.Then(t, "it reports ok", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
			})
		})

		testutil.When(t, "scraping metrics", func(t *testing.T) {
			rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))

			testutil.Then(t, "the prometheus endpoint responds", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
			})
		})

		testutil.When(t, "posting a decidable loan request", func(t *testing.T) {
			rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
				"personal_code": "38411266610",
				"loan_amount":   2000,
				"loan_period":   12,
				"country":       "Estonia",
			}))

			testutil.Then(t, "the loan is approved end to end", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				resp := testutil.UnmarshalResponse[decisionHandler.EvaluateResponse](t, rr)
				assert.Equal(t, 3600, resp.LoanAmount)
				assert.Equal(t, 12, resp.LoanPeriod)
			})

			testutil.Then(t, "a request id is echoed back", func(t *testing.T) {
				assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			})
		})

		testutil.When(t, "using the wrong method", func(t *testing.T) {
			rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodGet, "/loan/decision", nil))

			testutil.Then(t, "it responds with method not allowed", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
			})
		})
	})
}
