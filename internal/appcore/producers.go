package appcore

import (
	"context"
	"log/slog"

	"almanac/internal/interval"
	"almanac/internal/pipeline"
	"almanac/internal/runutil"
	"almanac/pkg/api"
)

// Solve reports the lowest terminal value for every requested mode.
func Solve(logger *slog.Logger, o Options) Producer[api.ResultV1] {
	return func(ctx context.Context, src Source, emit func(api.ResultV1) error) error {
		p, err := src.Pipeline()
		if err != nil {
			return err
		}
		seeds := src.SeedValues(o)
		for _, mode := range o.Modes {
			in, err := mode.Seeds(seeds)
			if err != nil {
				return err
			}
			for _, w := range runutil.ThreadWarnings(src.Threads, false, len(in)) {
				logger.Warn(w, "source", src.Name, "mode", mode)
			}
			res, err := p.Run(ctx, in)
			if err != nil {
				return err
			}
			logger.Info("solved", "source", src.Name, "mode", mode, "lowest", res.Lowest, "hops", res.Hops)

			merged := res.Final.Normalize()
			rec := api.ResultV1{
				Source:   src.Name,
				Mode:     string(mode),
				Start:    p.Start(),
				Terminal: p.Terminal(),
				Hops:     res.Hops,
				Lowest:   res.Lowest,
				Count:    merged.Count(),
			}
			if o.Intervals {
				rec.Intervals = toAPIIntervals(pick(o.Merge, merged, res.Final))
			}
			if err := emit(rec); err != nil {
				return err
			}
		}
		return nil
	}
}

// Trace emits the set leaving every hop, for every requested mode.
func Trace(logger *slog.Logger, o Options) Producer[api.HopV1] {
	return func(ctx context.Context, src Source, emit func(api.HopV1) error) error {
		seeds := src.SeedValues(o)
		for _, mode := range o.Modes {
			in, err := mode.Seeds(seeds)
			if err != nil {
				return err
			}
			var emitErr error
			p, err := src.Pipeline(pipeline.WithObserver(func(h pipeline.Hop) {
				if emitErr != nil {
					return
				}
				merged := h.Out.Normalize()
				lowest, _ := merged.Min()
				emitErr = emit(api.HopV1{
					Source:    src.Name,
					Mode:      string(mode),
					Index:     h.Index,
					From:      h.From,
					To:        h.To,
					Count:     merged.Count(),
					Lowest:    lowest,
					Intervals: toAPIIntervals(pick(o.Merge, merged, h.Out)),
				})
			}))
			if err != nil {
				return err
			}
			res, err := p.Run(ctx, in)
			if emitErr != nil {
				return emitErr
			}
			if err != nil {
				return err
			}
			logger.Debug("traced", "source", src.Name, "mode", mode, "hops", res.Hops, "lowest", res.Lowest)
		}
		return nil
	}
}

// Lookup walks single values through the chain with the scalar transform.
// Without --value the seeds are walked one by one regardless of mode.
func Lookup(logger *slog.Logger, o Options) Producer[api.LookupV1] {
	return func(ctx context.Context, src Source, emit func(api.LookupV1) error) error {
		p, err := src.Pipeline()
		if err != nil {
			return err
		}
		for _, w := range runutil.ThreadWarnings(src.Threads, true, 0) {
			logger.Debug(w, "source", src.Name)
		}
		values := o.Values
		if len(values) == 0 {
			values = src.SeedValues(o)
		}
		if len(values) == 0 {
			return pipeline.ErrNoValues
		}
		for _, v := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			steps := p.Walk(v)
			rec := api.LookupV1{
				Source: src.Name,
				Value:  v,
				Result: steps[len(steps)-1].Value,
				Steps:  make([]api.StepV1, len(steps)),
			}
			for i, s := range steps {
				rec.Steps[i] = api.StepV1{Category: s.Category, Value: s.Value}
			}
			if err := emit(rec); err != nil {
				return err
			}
		}
		return nil
	}
}

func pick(merge bool, merged, raw interval.Set) interval.Set {
	if merge {
		return merged
	}
	return raw
}

func toAPIIntervals(s interval.Set) []api.IntervalV1 {
	out := make([]api.IntervalV1, len(s))
	for i, iv := range s {
		out[i] = api.IntervalV1{Start: iv.Start, End: iv.End}
	}
	return out
}
