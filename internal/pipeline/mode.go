package pipeline

import (
	"fmt"

	"almanac/internal/interval"
)

// Mode selects how a seed list is read.
type Mode string

const (
	// ModeSeeds treats every value as a single seed.
	ModeSeeds Mode = "seeds"
	// ModeRanges treats adjacent values as (start, length) pairs.
	ModeRanges Mode = "ranges"
)

// ParseMode accepts "seeds" or "ranges".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSeeds, ModeRanges:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %s or %s)", s, ModeSeeds, ModeRanges)
	}
}

// Seeds converts a raw seed list into the interval set for m.
func (m Mode) Seeds(values []int64) (interval.Set, error) {
	switch m {
	case ModeSeeds:
		return interval.Points(values), nil
	case ModeRanges:
		return interval.Pairs(values)
	default:
		return nil, fmt.Errorf("unknown mode %q", string(m))
	}
}
