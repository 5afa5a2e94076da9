package handler

import (
	"strings"

	dErrors "otsus/pkg/domain-errors"
)

// maxPersonalCodeLength bounds the personal_code field before any parsing.
// Valid codes are 11 digits; the margin only exists to produce a clean
// validation error instead of feeding garbage into the parser.
const maxPersonalCodeLength = 20

// EvaluateRequest is the HTTP request body for POST /loan/decision.
type EvaluateRequest struct {
	PersonalCode string `json:"personal_code"`
	LoanAmount   int    `json:"loan_amount"`
	LoanPeriod   int    `json:"loan_period"`
	Country      string `json:"country"`
}

// Validate normalizes the request and enforces transport-level constraints.
// Business rules (bounds, checksum, age) stay in the service so the
// evaluator's check order is preserved; this only rejects what the service
// should never see.
//
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.PersonalCode = strings.TrimSpace(r.PersonalCode)
	r.Country = strings.TrimSpace(r.Country)

	if r.PersonalCode == "" {
		return dErrors.New(dErrors.CodeValidation, "personal_code is required")
	}
	if len(r.PersonalCode) > maxPersonalCodeLength {
		return dErrors.Newf(dErrors.CodeValidation,
			"personal_code must be at most %d characters", maxPersonalCodeLength)
	}

	// Country is optional: unrecognized or absent countries fall back to the
	// default life expectancy downstream.
	return nil
}
