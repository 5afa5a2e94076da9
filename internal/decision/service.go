package decision

import (
	"context"
	"log/slog"
	"time"

	dErrors "otsus/pkg/domain-errors"
	"otsus/pkg/personalcode"
	"otsus/pkg/requestcontext"

	"otsus/internal/decision/metrics"
)

// EvaluateRequest groups the four evaluator inputs.
type EvaluateRequest struct {
	PersonalCode string
	LoanAmount   int
	LoanPeriod   int
	Country      string
}

// Service is the decision evaluator. It is a pure function of its inputs and
// the constants table: no I/O, no state carried between calls, safe for
// concurrent use. The credit modifier is threaded through as a local value,
// never stored on the service.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the evaluator. Both dependencies may be nil; the
// service then runs silent and unmetered, which unit tests rely on.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{logger: logger, metrics: m}
}

// Evaluate decides on a loan request. It either approves the requested
// terms, finds the shortest longer period with approvable terms, or rejects.
//
// Check order is part of the contract (first failure wins): segment
// resolution and the debt rejection, then input validation, then age
// restrictions, then scoring. The evaluation clock comes from the context so
// callers control "today".
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (Decision, error) {
	start := time.Now()
	decision, err := s.evaluate(ctx, req)

	if s.metrics != nil {
		s.metrics.IncrementOutcome(outcomeLabel(err))
		s.metrics.ObserveEvaluateLatency(time.Since(start))
	}
	return decision, err
}

func (s *Service) evaluate(ctx context.Context, req EvaluateRequest) (Decision, error) {
	modifier, err := creditModifierFor(req.PersonalCode)
	if err != nil {
		return Decision{}, dErrors.Wrap(ErrInvalidPersonalCode, dErrors.CodeValidation,
			"Invalid personal ID code.")
	}
	if modifier == 0 {
		return Decision{}, dErrors.Wrap(ErrNoValidLoan, dErrors.CodeNotFound,
			"Loan denied due to existing debt.")
	}

	if err := validateInputs(req); err != nil {
		return Decision{}, err
	}

	if err := s.checkAgeRestrictions(ctx, req); err != nil {
		return Decision{}, err
	}

	if creditScore(modifier, req.LoanAmount, req.LoanPeriod) >= creditScoreThreshold {
		return approveAtRequestedPeriod(modifier, req.LoanPeriod), nil
	}

	if alternative, ok := searchAlternativePeriod(modifier, req.LoanPeriod); ok {
		if s.logger != nil {
			s.logger.DebugContext(ctx, "alternative period found",
				"requested_period", req.LoanPeriod,
				"period", alternative.Period,
				"amount", alternative.Amount,
			)
		}
		return alternative, nil
	}

	return Decision{}, dErrors.Wrap(ErrNoValidLoan, dErrors.CodeNotFound,
		"No valid loan found within the allowed period.")
}

// creditModifierFor resolves the risk segment from the code's trailing
// digits. This runs before structural validation, so it must tolerate codes
// that would fail the checksum.
func creditModifierFor(code string) (int, error) {
	selector, err := personalcode.SegmentSelector(code)
	if err != nil {
		return 0, err
	}
	return SegmentFor(selector).CreditModifier(), nil
}

// validateInputs enforces the structural and range constraints on all
// inputs. The messages carry the configured bounds so clients can render
// user-facing detail.
func validateInputs(req EvaluateRequest) error {
	if err := personalcode.Validate(req.PersonalCode); err != nil {
		return dErrors.Wrap(ErrInvalidPersonalCode, dErrors.CodeValidation,
			"Invalid personal ID code.")
	}
	if req.LoanAmount < MinimumLoanAmount || req.LoanAmount > MaximumLoanAmount {
		return dErrors.Wrap(ErrInvalidLoanAmount, dErrors.CodeValidation,
			loanAmountBoundsMessage())
	}
	if req.LoanPeriod < MinimumLoanPeriod || req.LoanPeriod > MaximumLoanPeriod {
		return dErrors.Wrap(ErrInvalidLoanPeriod, dErrors.CodeValidation,
			loanPeriodBoundsMessage())
	}
	return nil
}

// checkAgeRestrictions verifies the applicant is of age and young enough to
// outlive the loan given the country's expected lifetime.
func (s *Service) checkAgeRestrictions(ctx context.Context, req EvaluateRequest) error {
	birthDate, err := personalcode.BirthDate(req.PersonalCode)
	if err != nil {
		// The code already passed full validation; a failure here is an
		// internal fault, never a business rejection.
		return dErrors.Wrap(err, dErrors.CodeInternal, "birth date extraction failed")
	}

	age := ageAt(birthDate, requestcontext.Now(ctx))
	if age < MinimumAge {
		return dErrors.Wrap(ErrInvalidAge, dErrors.CodeValidation,
			"Customer is underage and cannot receive a loan.")
	}
	if age > maxAcceptableAge(req.Country, req.LoanPeriod) {
		return dErrors.Wrap(ErrInvalidAge, dErrors.CodeValidation,
			"Customer is too old to receive a loan for this period.")
	}
	return nil
}

// outcomeLabel maps an evaluation result to a metrics label.
func outcomeLabel(err error) string {
	if err == nil {
		return "approved"
	}
	if kind, ok := RejectionKind(err); ok {
		return kind
	}
	return "internal_fault"
}
