package decision

import "time"

// This file holds the pure lending rules: scoring, the alternative period
// search, and the age restrictions. No I/O, no side effects; everything the
// rules need arrives as arguments.

// Decision is an approved amount and period pair.
type Decision struct {
	Amount int
	Period int
}

// creditScore computes (modifier / amount) * period / 10. The caller
// guarantees amount is non-zero via the input bounds.
func creditScore(modifier, amount, period int) float64 {
	return (float64(modifier) / float64(amount)) * float64(period) / 10
}

// maximumLoanFor is the largest amount a segment supports at a period.
func maximumLoanFor(modifier, period int) int {
	return modifier * period
}

// approveAtRequestedPeriod returns the offer for a requested period whose
// score met the threshold. The amount is the segment's maximum for that
// period, capped at the configured ceiling.
func approveAtRequestedPeriod(modifier, period int) Decision {
	return Decision{
		Amount: min(MaximumLoanAmount, maximumLoanFor(modifier, period)),
		Period: period,
	}
}

// searchAlternativePeriod walks candidate periods in ascending order from
// requestedPeriod+1 to the maximum, returning the first period whose maximum
// amount clears the floor and whose score meets the threshold. This is a
// minimum-period search: the first match wins.
//
// The candidate amount is intentionally not capped at MaximumLoanAmount;
// regression scenarios depend on the uncapped value. See DESIGN.md before
// changing this.
func searchAlternativePeriod(modifier, requestedPeriod int) (Decision, bool) {
	for period := requestedPeriod + 1; period <= MaximumLoanPeriod; period++ {
		amount := maximumLoanFor(modifier, period)
		if amount >= MinimumLoanAmount && creditScore(modifier, amount, period) >= creditScoreThreshold {
			return Decision{Amount: amount, Period: period}, true
		}
	}
	return Decision{}, false
}

// ageAt returns whole calendar years between birthDate and now.
func ageAt(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// maxAcceptableAge is the oldest age allowed for a loan of the given period:
// the country's expected lifetime minus the period in whole years.
func maxAcceptableAge(country string, period int) int {
	return lifeExpectancyFor(country) - period/12
}
