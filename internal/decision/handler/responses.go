package handler

import "otsus/internal/decision"

// EvaluateResponse is the HTTP response for POST /loan/decision. Errors use
// the shared envelope written by httputil.WriteError instead.
type EvaluateResponse struct {
	LoanAmount int `json:"loan_amount"`
	LoanPeriod int `json:"loan_period"`
}

// FromDecision converts a domain decision to an HTTP response.
func FromDecision(d decision.Decision) *EvaluateResponse {
	return &EvaluateResponse{
		LoanAmount: d.Amount,
		LoanPeriod: d.Period,
	}
}
