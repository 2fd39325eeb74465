// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"

	"almanac/internal/engine"
	"almanac/internal/interval"
)

// Default chain endpoints of the almanac.
const (
	DefaultStart    = "seed"
	DefaultTerminal = "location"
)

// minPerTask keeps tiny hops on the calling goroutine.
const minPerTask = 64

// ErrNoValues is returned when an input set covers no values at all, so no
// minimum exists.
var ErrNoValues = errors.New("input covers no values")

// Hop describes one applied stage. In and Out are owned by the receiver.
type Hop struct {
	Index int
	From  string
	To    string
	In    interval.Set
	Out   interval.Set
}

// Observer is called synchronously after every hop.
type Observer func(Hop)

// Result is the outcome of one traversal.
type Result struct {
	Lowest int64
	Final  interval.Set
	Hops   int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithThreads spreads the intervals of each hop over n workers. n <= 1 keeps
// the traversal on the calling goroutine.
func WithThreads(n int) Option {
	return func(p *Pipeline) { p.threads = n }
}

// WithObserver registers fn to receive every hop of every Run.
func WithObserver(fn Observer) Option {
	return func(p *Pipeline) { p.observe = fn }
}

// Pipeline is a validated chain of stages.
type Pipeline struct {
	start    string
	terminal string
	stages   map[string]*engine.Stage
	chain    []*engine.Stage
	threads  int
	observe  Observer
}

// New indexes stages by name and resolves the chain from start to terminal.
//
// terminal names either a stage (traversal stops right after applying it) or,
// when no stage carries that name, the destination category of the last
// stage (traversal stops after the stage whose Next is terminal).
func New(stages []*engine.Stage, start, terminal string, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		start:    start,
		terminal: terminal,
		stages:   make(map[string]*engine.Stage, len(stages)),
		threads:  1,
	}
	for _, o := range opts {
		o(p)
	}
	for _, s := range stages {
		if _, dup := p.stages[s.Name]; dup {
			return nil, &engine.ConfigError{Category: s.Name, RuleIndex: -1, Err: engine.ErrDuplicateStage}
		}
		p.stages[s.Name] = s
	}

	cur, ok := p.stages[start]
	if !ok {
		return nil, &engine.ConfigError{Category: start, RuleIndex: -1, Err: engine.ErrMissingStage, Detail: "no stage for start category"}
	}
	_, terminalIsStage := p.stages[terminal]
	for hops := 0; ; hops++ {
		if hops >= len(stages) {
			return nil, &engine.ConfigError{
				Category:  cur.Name,
				RuleIndex: -1,
				Err:       engine.ErrCycle,
				Detail:    fmt.Sprintf("%q not reached within %d hops", terminal, len(stages)),
			}
		}
		p.chain = append(p.chain, cur)
		if cur.Name == terminal || (!terminalIsStage && cur.Next == terminal) {
			break
		}
		next, ok := p.stages[cur.Next]
		if !ok {
			return nil, &engine.ConfigError{
				Category:  cur.Name,
				RuleIndex: -1,
				Err:       engine.ErrMissingStage,
				Detail:    fmt.Sprintf("next category %q is not defined", cur.Next),
			}
		}
		cur = next
	}
	return p, nil
}

func (p *Pipeline) Start() string    { return p.start }
func (p *Pipeline) Terminal() string { return p.terminal }

// Hops is the number of stages applied by Run.
func (p *Pipeline) Hops() int { return len(p.chain) }

// Chain lists the category names visited, start first.
func (p *Pipeline) Chain() []string {
	names := make([]string, len(p.chain))
	for i, s := range p.chain {
		names[i] = s.Name
	}
	return names
}

// Stage returns the stage registered for category name.
func (p *Pipeline) Stage(name string) (*engine.Stage, bool) {
	s, ok := p.stages[name]
	return s, ok
}

// Run feeds in through every stage of the chain and reports the lowest value
// of the final set. Intervals with Start > End are rejected before any stage
// runs; empty intervals are dropped.
func (p *Pipeline) Run(ctx context.Context, in interval.Set) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	cur := in.Compact()
	if len(cur) == 0 {
		return Result{}, ErrNoValues
	}

	var pool pond.ResultPool[interval.Set]
	if p.threads > 1 {
		pool = pond.NewResultPool[interval.Set](p.threads)
		defer pool.StopAndWait()
	}

	for i, st := range p.chain {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		out, err := mapHop(ctx, pool, st, cur, p.threads)
		if err != nil {
			return Result{}, err
		}
		if p.observe != nil {
			p.observe(Hop{Index: i, From: st.Name, To: st.Next, In: cur.Clone(), Out: out.Clone()})
		}
		cur = out
	}

	lowest, ok := cur.Min()
	if !ok {
		return Result{}, ErrNoValues
	}
	return Result{Lowest: lowest, Final: cur, Hops: len(p.chain)}, nil
}

// RunValue maps a single value as the interval [v, v+1).
func (p *Pipeline) RunValue(ctx context.Context, v int64) (int64, error) {
	res, err := p.Run(ctx, interval.Set{interval.Point(v)})
	if err != nil {
		return 0, err
	}
	return res.Lowest, nil
}

// Lowest interprets seeds according to mode and runs them.
func (p *Pipeline) Lowest(ctx context.Context, seeds []int64, mode Mode) (Result, error) {
	in, err := mode.Seeds(seeds)
	if err != nil {
		return Result{}, err
	}
	return p.Run(ctx, in)
}

// Step is one category visited by Walk.
type Step struct {
	Category string
	Value    int64
}

// Walk follows a single value through the chain using the scalar transform
// and records the value held in every category, the input first.
func (p *Pipeline) Walk(v int64) []Step {
	steps := make([]Step, 0, len(p.chain)+1)
	for _, st := range p.chain {
		steps = append(steps, Step{Category: st.Name, Value: v})
		v = st.Transform(v)
	}
	last := p.terminal
	if n := len(p.chain); n > 0 && p.chain[n-1].Name == p.terminal && p.chain[n-1].Next != "" {
		last = p.chain[n-1].Next
	}
	return append(steps, Step{Category: last, Value: v})
}

// mapHop applies m to every interval of in. With a pool and enough input the
// intervals are split into contiguous chunks, each mapped into its own
// buffer; results are concatenated in submission order.
func mapHop(ctx context.Context, pool pond.ResultPool[interval.Set], m Mapper, in interval.Set, threads int) (interval.Set, error) {
	if pool == nil || threads <= 1 || len(in) < 2*minPerTask {
		out := make(interval.Set, 0, len(in))
		for _, iv := range in {
			out = m.MapInterval(iv, out)
		}
		return out, nil
	}

	per := max(minPerTask, (len(in)+threads-1)/threads)
	group := pool.NewGroupContext(ctx)
	for lo := 0; lo < len(in); lo += per {
		chunk := in[lo:min(lo+per, len(in))]
		group.SubmitErr(func() (interval.Set, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			local := make(interval.Set, 0, len(chunk))
			for _, iv := range chunk {
				local = m.MapInterval(iv, local)
			}
			return local, nil
		})
	}
	parts, err := group.Wait()
	if err != nil {
		return nil, err
	}
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	out := make(interval.Set, 0, n)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}
