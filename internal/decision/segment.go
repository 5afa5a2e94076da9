package decision

// Segment is the risk tier derived from the trailing four digits of the
// personal code.
type Segment int

const (
	SegmentDebt Segment = iota
	Segment1
	Segment2
	Segment3
)

// Selector bands, lower bound inclusive. Anything below segment1Floor means
// the person carries debt and is ineligible.
const (
	segment1Floor = 2500
	segment2Floor = 5000
	segment3Floor = 7500
)

// SegmentFor maps a segment selector (0000-9999) to its risk tier.
func SegmentFor(selector int) Segment {
	switch {
	case selector < segment1Floor:
		return SegmentDebt
	case selector < segment2Floor:
		return Segment1
	case selector < segment3Floor:
		return Segment2
	default:
		return Segment3
	}
}

// CreditModifier returns the strength-of-credit value for the segment. Zero
// is returned only for SegmentDebt, and a zero modifier always rejects
// before any scoring, so it can never reach a division.
func (s Segment) CreditModifier() int {
	switch s {
	case Segment1:
		return 100
	case Segment2:
		return 300
	case Segment3:
		return 1000
	default:
		return 0
	}
}

func (s Segment) String() string {
	switch s {
	case SegmentDebt:
		return "debt"
	case Segment1:
		return "segment_1"
	case Segment2:
		return "segment_2"
	case Segment3:
		return "segment_3"
	default:
		return "unknown"
	}
}
