package engine

import (
	"fmt"
	"math"

	"almanac/internal/interval"
)

// Rule shifts every value in [SourceStart, SourceStart+SourceLength) by Offset.
type Rule struct {
	SourceStart  int64
	SourceLength int64
	Offset       int64
}

// NewRule builds a Rule from an almanac triple (dest, src, length).
func NewRule(dest, src, length int64) (Rule, error) {
	r := Rule{SourceStart: src, SourceLength: length, Offset: dest - src}
	if detail := r.check(); detail != "" {
		return Rule{}, &ConfigError{RuleIndex: -1, Err: ErrInvalidRule, Detail: detail}
	}
	return r, nil
}

func (r Rule) check() string {
	if r.SourceLength <= 0 {
		return fmt.Sprintf("source length %d must be positive", r.SourceLength)
	}
	if r.SourceStart > 0 && r.SourceLength > math.MaxInt64-r.SourceStart {
		return fmt.Sprintf("source [%d, +%d) overflows int64", r.SourceStart, r.SourceLength)
	}
	return ""
}

// Source is the half-open range the rule applies to.
func (r Rule) Source() interval.Interval {
	return interval.Interval{Start: r.SourceStart, End: r.SourceStart + r.SourceLength}
}

// Dest is Source shifted by Offset.
func (r Rule) Dest() interval.Interval { return r.Source().Translate(r.Offset) }

// Apply reports v+Offset when the rule covers v.
func (r Rule) Apply(v int64) (int64, bool) {
	if !r.Source().Contains(v) {
		return v, false
	}
	return v + r.Offset, true
}
