// Package interval holds half-open int64 ranges and unordered collections of
// them. It never imports engine, pipeline, or any presentation package.
package interval

import (
	"fmt"
	"math"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// New returns [start, end) or an InvalidInputError when start > end.
func New(start, end int64) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.WellFormed() {
		return Interval{}, &InvalidInputError{Index: -1, Start: start, End: end, Reason: "start exceeds end"}
	}
	return iv, nil
}

// FromLength returns [start, start+length).
func FromLength(start, length int64) (Interval, error) {
	if length < 0 {
		return Interval{}, &InvalidInputError{Index: -1, Start: start, Length: length, Reason: "negative length"}
	}
	if start > 0 && length > math.MaxInt64-start {
		return Interval{}, &InvalidInputError{Index: -1, Start: start, Length: length, Reason: "end overflows int64"}
	}
	return Interval{Start: start, End: start + length}, nil
}

// Point returns the length-one interval [v, v+1).
func Point(v int64) Interval { return Interval{Start: v, End: v + 1} }

func (iv Interval) WellFormed() bool { return iv.Start <= iv.End }

func (iv Interval) Len() int64 { return iv.End - iv.Start }

// Empty reports whether iv carries no values.
func (iv Interval) Empty() bool { return iv.Start >= iv.End }

func (iv Interval) Contains(v int64) bool { return iv.Start <= v && v < iv.End }

// Overlaps reports whether iv and o share at least one value.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// Intersect returns the common part of iv and o. The result is empty (but
// well-formed) when they do not overlap.
func (iv Interval) Intersect(o Interval) Interval {
	start := max(iv.Start, o.Start)
	end := min(iv.End, o.End)
	return Interval{Start: start, End: max(start, end)}
}

// Before returns the part of iv strictly left of cut.Start.
func (iv Interval) Before(cut Interval) Interval {
	return Interval{Start: iv.Start, End: max(iv.Start, min(iv.End, cut.Start))}
}

// After returns the part of iv at or right of cut.End.
func (iv Interval) After(cut Interval) Interval {
	return Interval{Start: min(iv.End, max(iv.Start, cut.End)), End: iv.End}
}

// Translate shifts both bounds by off.
func (iv Interval) Translate(off int64) Interval {
	return Interval{Start: iv.Start + off, End: iv.End + off}
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }
