package engine

import (
	"slices"

	"almanac/internal/interval"
)

// Stage is one "Name-to-Next" rule table.
type Stage struct {
	Name  string
	Next  string
	rules []Rule
}

// NewStage validates rules and returns a read-only Stage. Rules are scanned in
// the order given; Next may be empty only for a terminal stage.
func NewStage(name, next string, rules ...Rule) (*Stage, error) {
	for i, r := range rules {
		if detail := r.check(); detail != "" {
			return nil, &ConfigError{Category: name, RuleIndex: i, Err: ErrInvalidRule, Detail: detail}
		}
	}
	return &Stage{Name: name, Next: next, rules: slices.Clone(rules)}, nil
}

// Rules returns a copy of the stage's rules.
func (s *Stage) Rules() []Rule { return slices.Clone(s.rules) }

// Transform maps a single value: the first rule covering v wins, otherwise v
// passes through.
func (s *Stage) Transform(v int64) int64 {
	for _, r := range s.rules {
		if out, ok := r.Apply(v); ok {
			return out
		}
	}
	return v
}

// Map remaps every interval in `in` and returns a freshly allocated set.
// Each input value appears exactly once in the output, shifted by the first
// rule that covers it or unchanged.
func (s *Stage) Map(in interval.Set) interval.Set {
	out := make(interval.Set, 0, len(in))
	for _, iv := range in {
		out = s.MapInterval(iv, out)
	}
	return out
}

// MapInterval appends the image of iv to dst and returns the extended slice.
func (s *Stage) MapInterval(iv interval.Interval, dst interval.Set) interval.Set {
	if iv.Empty() {
		return dst
	}
	pending := []interval.Interval{iv}
	var rest []interval.Interval
	for _, r := range s.rules {
		if len(pending) == 0 {
			break
		}
		src := r.Source()
		rest = rest[:0]
		for _, p := range pending {
			hit := p.Intersect(src)
			if hit.Empty() {
				rest = append(rest, p)
				continue
			}
			dst = append(dst, hit.Translate(r.Offset))
			if b := p.Before(src); !b.Empty() {
				rest = append(rest, b)
			}
			if a := p.After(src); !a.Empty() {
				rest = append(rest, a)
			}
		}
		// reuse the drained buffer for the next rule
		pending, rest = rest, pending
	}
	return append(dst, pending...)
}
