package decision

import (
	"errors"
	"fmt"
)

// Sentinel errors for the five business rejection kinds. The service wraps
// these into domain errors carrying the client-facing message; transports
// and tests branch on errors.Is.
//
// The kinds are mutually exclusive per evaluation: the first check that
// fails determines the error, in the order segment resolution, input
// validation, age restrictions, scoring.
var (
	ErrInvalidPersonalCode = errors.New("invalid personal code")
	ErrInvalidLoanAmount   = errors.New("invalid loan amount")
	ErrInvalidLoanPeriod   = errors.New("invalid loan period")
	ErrInvalidAge          = errors.New("invalid age")
	ErrNoValidLoan         = errors.New("no valid loan")
)

// Client-facing messages for out-of-bounds inputs. Built from the constants
// so the rendered bounds can never drift from the enforced ones.
func loanAmountBoundsMessage() string {
	return fmt.Sprintf("Loan amount must be between €%d and €%d.", MinimumLoanAmount, MaximumLoanAmount)
}

func loanPeriodBoundsMessage() string {
	return fmt.Sprintf("Loan period must be between %d and %d months.", MinimumLoanPeriod, MaximumLoanPeriod)
}

// RejectionKind returns a stable label for a business rejection, used for
// metrics and logging. The second result is false for errors outside the
// taxonomy (internal faults).
func RejectionKind(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidPersonalCode):
		return "invalid_personal_code", true
	case errors.Is(err, ErrInvalidLoanAmount):
		return "invalid_loan_amount", true
	case errors.Is(err, ErrInvalidLoanPeriod):
		return "invalid_loan_period", true
	case errors.Is(err, ErrInvalidAge):
		return "invalid_age", true
	case errors.Is(err, ErrNoValidLoan):
		return "no_valid_loan", true
	default:
		return "", false
	}
}
