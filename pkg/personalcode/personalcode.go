// Package personalcode parses and validates Estonian personal identity
// codes (isikukood).
//
// A code is 11 digits: GYYMMDDSSSC. G encodes gender and century of birth,
// YYMMDD the birth date within that century, SSS a daily sequence number and
// C a mod-11 checksum over the first ten digits. The trailing four digits
// (SSSC) double as the risk segment selector for credit decisions.
//
// The package is a leaf: it reports plain errors and leaves classification
// into an error taxonomy to callers at the trust boundary.
package personalcode

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Length of a structurally complete code.
const Length = 11

// selectorWidth is the number of trailing digits forming the segment selector.
const selectorWidth = 4

var (
	// ErrFormat covers structural failures: wrong length, non-digits, or an
	// unknown century digit.
	ErrFormat = errors.New("malformed personal code")

	// ErrBirthDate covers codes whose date components do not form a real
	// calendar date.
	ErrBirthDate = errors.New("personal code encodes an invalid birth date")

	// ErrChecksum covers codes whose check digit does not match.
	ErrChecksum = errors.New("personal code checksum mismatch")
)

// centuryFor maps the leading gender digit to the century base year.
// Digits 7 and 8 are reserved for the 2100s and not yet issued.
var centuryFor = map[byte]int{
	'1': 1800, '2': 1800,
	'3': 1900, '4': 1900,
	'5': 2000, '6': 2000,
}

// Mod-11 checksum weights. The second set applies when the first round
// yields a remainder of 10; a second remainder of 10 means check digit 0.
var (
	weightsFirst  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	weightsSecond = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// Validate checks the full structural validity of a code: length, digits
// only, a known century digit, a real calendar birth date, and the checksum.
func Validate(code string) error {
	if len(code) != Length {
		return fmt.Errorf("%w: expected %d digits, got %d", ErrFormat, Length, len(code))
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: non-digit at position %d", ErrFormat, i+1)
		}
	}
	if _, err := BirthDate(code); err != nil {
		return err
	}
	if checkDigit(code) != int(code[Length-1]-'0') {
		return ErrChecksum
	}
	return nil
}

// BirthDate extracts the birth date encoded in the first seven digits.
func BirthDate(code string) (time.Time, error) {
	if len(code) < 7 {
		return time.Time{}, fmt.Errorf("%w: too short for a birth date", ErrFormat)
	}

	base, ok := centuryFor[code[0]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown century digit %q", ErrFormat, code[0])
	}

	year, err := strconv.Atoi(code[1:3])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: year digits: %v", ErrFormat, err)
	}
	month, err := strconv.Atoi(code[3:5])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month digits: %v", ErrFormat, err)
	}
	day, err := strconv.Atoi(code[5:7])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day digits: %v", ErrFormat, err)
	}

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so round-trip the components to catch impossible dates.
	date := time.Date(base+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != base+year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrBirthDate, base+year, month, day)
	}
	return date, nil
}

// SegmentSelector interprets the last four digits of the code as an integer.
// It works on codes that have not passed full validation; segment resolution
// runs before structural checks in the decision flow.
func SegmentSelector(code string) (int, error) {
	if len(code) < selectorWidth {
		return 0, fmt.Errorf("%w: too short for a segment selector", ErrFormat)
	}
	selector, err := strconv.Atoi(code[len(code)-selectorWidth:])
	if err != nil || selector < 0 {
		return 0, fmt.Errorf("%w: non-numeric segment selector", ErrFormat)
	}
	return selector, nil
}

// checkDigit computes the expected mod-11 check digit over the first ten
// digits of code. Callers guarantee code holds at least ten digits.
func checkDigit(code string) int {
	remainder := weightedRemainder(code, weightsFirst)
	if remainder < 10 {
		return remainder
	}
	remainder = weightedRemainder(code, weightsSecond)
	if remainder < 10 {
		return remainder
	}
	return 0
}

func weightedRemainder(code string, weights [10]int) int {
	sum := 0
	for i, w := range weights {
		sum += int(code[i]-'0') * w
	}
	return sum % 11
}
