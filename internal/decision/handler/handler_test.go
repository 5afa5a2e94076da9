package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otsus/internal/decision"
	"otsus/pkg/testutil"
)

// newTestRouter mounts the handler over the real evaluator. The service is
// pure, so no doubles are needed; metrics stay nil to avoid touching the
// process-wide prometheus registry.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := decision.NewService(logger, nil)

	r := chi.NewRouter()
	New(service, logger).Register(r)
	return r
}

func TestHandleEvaluate(t *testing.T) {
	router := newTestRouter(t)

	t.Run("approves and returns the offer", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"personal_code": "38411266610",
			"loan_amount":   2000,
			"loan_period":   12,
			"country":       "Estonia",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[EvaluateResponse](t, rr)
		assert.Equal(t, 3600, resp.LoanAmount)
		assert.Equal(t, 12, resp.LoanPeriod)
	})

	t.Run("invalid personal code maps to validation_error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"personal_code": "12345678901",
			"loan_amount":   4000,
			"loan_period":   12,
			"country":       "Estonia",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "Invalid personal ID code.", errResp["error_description"])
	})

	t.Run("out of bounds amount carries the bounds in the description", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"personal_code": "50307172740",
			"loan_amount":   1999,
			"loan_period":   12,
			"country":       "Estonia",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "Loan amount must be between €2000 and €10000.", errResp["error_description"])
	})

	t.Run("debtor maps to not_found", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"personal_code": "37605030299",
			"loan_amount":   4000,
			"loan_period":   12,
			"country":       "Estonia",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "Loan denied due to existing debt.", errResp["error_description"])
	})

	t.Run("malformed JSON maps to bad_request", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/loan/decision", "{not json")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("missing personal_code fails fast", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"loan_amount": 4000,
			"loan_period": 12,
			"country":     "Estonia",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
		errResp := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, "personal_code is required", errResp["error_description"])
	})

	t.Run("country is optional", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/loan/decision", map[string]any{
			"personal_code": "38411266610",
			"loan_amount":   2000,
			"loan_period":   12,
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
	})
}

func TestEvaluateRequestValidate(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		req := &EvaluateRequest{PersonalCode: " 38411266610 ", Country: " Estonia "}
		require.NoError(t, req.Validate())
		assert.Equal(t, "38411266610", req.PersonalCode)
		assert.Equal(t, "Estonia", req.Country)
	})

	t.Run("rejects oversized personal_code", func(t *testing.T) {
		req := &EvaluateRequest{PersonalCode: "123456789012345678901"}
		assert.Error(t, req.Validate())
	})
}
