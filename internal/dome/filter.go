package dome

import "github.com/litescript/skydome/internal/catalog"

// Range is an inclusive numeric interval. A range with Min > Max is a valid
// caller configuration that matches nothing, not an error.
type Range struct {
	Min float64
	Max float64
}

// Valid reports whether the range can match anything.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Contains reports whether v lies in [Min,Max]. Inclusive on both ends;
// false for every v when Min > Max.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Ranges holds the four independent filter constraints.
type Ranges struct {
	Magnitude Range
	Distance  Range
	Age       Range
	Mass      Range
}

// DefaultRanges returns wide-open constraints that admit any plausible
// catalog star.
func DefaultRanges() Ranges {
	return Ranges{
		Magnitude: Range{Min: -5, Max: 10},
		Distance:  Range{Min: 0, Max: 100000},
		Age:       Range{Min: 0, Max: 20},
		Mass:      Range{Min: 0, Max: 200},
	}
}

// Match reports whether the star satisfies all four constraints.
func (r Ranges) Match(s catalog.Star) bool {
	return r.Magnitude.Contains(s.Magnitude) &&
		r.Distance.Contains(s.DistanceLY) &&
		r.Age.Contains(s.AgeGyr) &&
		r.Mass.Contains(s.MassSolar)
}

// Filter returns the stars satisfying all four range constraints, in the
// order they appear in the input. Pure: the input is never mutated and the
// result is a fresh slice. Filtering is idempotent, and narrowing any range
// can only shrink or preserve the result.
func Filter(stars []catalog.Star, r Ranges) []catalog.Star {
	out := make([]catalog.Star, 0, len(stars))
	for _, s := range stars {
		if r.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
