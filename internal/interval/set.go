package interval

import (
	"slices"
	"strings"
)

// Set is an unordered collection of intervals. Nothing requires it to be
// sorted or disjoint; Normalize produces the minimal form when needed.
type Set []Interval

// Points maps each scalar value v to [v, v+1).
func Points(values []int64) Set {
	out := make(Set, 0, len(values))
	for _, v := range values {
		out = append(out, Point(v))
	}
	return out
}

// Pairs reads values as adjacent (start, length) pairs.
func Pairs(values []int64) (Set, error) {
	if len(values)%2 != 0 {
		return nil, &InvalidInputError{Index: len(values) - 1, Reason: "odd number of values for (start, length) pairs"}
	}
	out := make(Set, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		iv, err := FromLength(values[i], values[i+1])
		if err != nil {
			e := err.(*InvalidInputError)
			e.Index = i / 2
			return nil, e
		}
		out = append(out, iv)
	}
	return out, nil
}

// Validate returns the first interval with Start > End.
func (s Set) Validate() error {
	for i, iv := range s {
		if !iv.WellFormed() {
			return &InvalidInputError{Index: i, Start: iv.Start, End: iv.End, Reason: "start exceeds end"}
		}
	}
	return nil
}

// Compact returns a new set without zero-length intervals.
func (s Set) Compact() Set {
	out := make(Set, 0, len(s))
	for _, iv := range s {
		if !iv.Empty() {
			out = append(out, iv)
		}
	}
	return out
}

// Normalize returns a new sorted set in which overlapping or adjacent
// intervals are merged and empty ones dropped.
func (s Set) Normalize() Set {
	out := s.Compact()
	if len(out) < 2 {
		return out
	}
	slices.SortFunc(out, func(a, b Interval) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		switch {
		case a.End < b.End:
			return -1
		case a.End > b.End:
			return 1
		}
		return 0
	})
	merged := out[:1]
	for _, iv := range out[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			last.End = max(last.End, iv.End)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Min returns the smallest value covered by s.
func (s Set) Min() (int64, bool) {
	var (
		lowest int64
		found  bool
	)
	for _, iv := range s {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < lowest {
			lowest, found = iv.Start, true
		}
	}
	return lowest, found
}

// Count is the number of values covered, counting overlaps once per interval.
func (s Set) Count() int64 {
	var n int64
	for _, iv := range s {
		if !iv.Empty() {
			n += iv.Len()
		}
	}
	return n
}

func (s Set) Clone() Set { return slices.Clone(s) }

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " ")
}
