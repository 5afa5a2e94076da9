package decision

import "strings"

// Lending bounds. These are business policy, fixed for the process lifetime;
// every decision is computed against this table.
const (
	MinimumLoanAmount = 2000  // EUR
	MaximumLoanAmount = 10000 // EUR
	MinimumLoanPeriod = 12    // months
	MaximumLoanPeriod = 48    // months

	MinimumAge = 18

	// creditScoreThreshold separates direct approval from the alternative
	// period search and, ultimately, rejection.
	creditScoreThreshold = 0.1

	defaultLifeExpectancy = 82
)

// lifeExpectancyByCountry holds expected lifetimes in years, keyed by
// lowercase country name. Adding a country is a data change, not a code
// change.
var lifeExpectancyByCountry = map[string]int{
	"estonia":   78,
	"latvia":    75,
	"lithuania": 76,
}

// lifeExpectancyFor returns the expected lifetime for a country. Lookup is
// case-insensitive; unrecognized countries fall back to the default. The
// fallback is deliberately permissive, not a validation failure.
func lifeExpectancyFor(country string) int {
	if years, ok := lifeExpectancyByCountry[strings.ToLower(country)]; ok {
		return years
	}
	return defaultLifeExpectancy
}
