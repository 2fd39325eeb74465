package pipeline

import "almanac/internal/interval"

// Mapper is the minimal capability a hop needs. *engine.Stage satisfies it,
// and so can fakes in tests.
type Mapper interface {
	MapInterval(iv interval.Interval, dst interval.Set) interval.Set
}
