// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"almanac/internal/almanac"
	"almanac/internal/engine"
	"almanac/internal/interval"
	"almanac/internal/pipeline"
	"almanac/internal/runutil"
	"almanac/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitNoValues = 1
	ExitInvalid  = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	Files []string

	Start            string
	Terminal         string
	StartExplicit    bool
	TerminalExplicit bool

	Modes  []pipeline.Mode
	Seeds  []int64
	Values []int64

	Threads   int
	Intervals bool
	Merge     bool
}

// Source is one loaded almanac with its chain endpoints resolved.
type Source struct {
	Name     string
	Doc      *almanac.Document
	Stages   []*engine.Stage
	Start    string
	Terminal string
	Threads  int
}

// Pipeline resolves the chain of src with its worker count plus extra.
func (src Source) Pipeline(extra ...pipeline.Option) (*pipeline.Pipeline, error) {
	opts := append([]pipeline.Option{pipeline.WithThreads(src.Threads)}, extra...)
	return pipeline.New(src.Stages, src.Start, src.Terminal, opts...)
}

// SeedValues returns the CLI seeds when given, otherwise the file's.
func (src Source) SeedValues(o Options) []int64 {
	if len(o.Seeds) > 0 {
		return o.Seeds
	}
	return src.Doc.Seeds
}

// Producer emits the records of one source. emit fails once the run is
// cancelled.
type Producer[T any] func(ctx context.Context, src Source, emit func(T) error) error

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run loads every file, hands each to produce and streams the records into
// the writer built by wf. A failing file is logged and the remaining files
// still run; the first failure decides the exit code.
func Run[T any](
	parent context.Context,
	stdout io.Writer,
	logger *slog.Logger,
	o Options,
	produce Producer[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	thr := runutil.EffectiveThreads(o.Threads)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := wf.Start(outw, runutil.BufSize(thr))
	emit := func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	code := ExitOK
	for _, path := range o.Files {
		if ctx.Err() != nil {
			break
		}
		src, err := load(path, o, thr)
		if err == nil {
			logger.Debug("almanac loaded", "source", src.Name, "stages", len(src.Stages),
				"seeds", len(src.Doc.Seeds), "start", src.Start, "terminal", src.Terminal)
			err = produce(ctx, src, emit)
		}
		if err != nil {
			c := ExitCode(err)
			if c != ExitCanceled {
				logger.Error("almanac failed", "source", path, "err", err)
			}
			if code == ExitOK {
				code = c
			}
		}
	}
	close(inCh)

	if werr := <-writeErr; werr != nil && !writers.IsBrokenPipe(werr) {
		logger.Error("write output", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		logger.Error("flush output", "err", e)
		return ExitIO
	}
	if parent.Err() != nil {
		return ExitCanceled
	}
	return code
}

// load parses path and settles the chain endpoints. A flag beats the file,
// the file beats the environment and defaults already folded into o.
func load(path string, o Options, threads int) (Source, error) {
	doc, err := almanac.Load(path)
	if err != nil {
		return Source{}, err
	}
	stages, err := doc.Stages()
	if err != nil {
		return Source{}, err
	}
	src := Source{Name: path, Doc: doc, Stages: stages, Start: o.Start, Terminal: o.Terminal, Threads: threads}
	if !o.StartExplicit && doc.Start != "" {
		src.Start = doc.Start
	}
	if !o.TerminalExplicit && doc.Terminal != "" {
		src.Terminal = doc.Terminal
	}
	return src, nil
}

// ExitCode classifies err.
func ExitCode(err error) int {
	var (
		pe *almanac.ParseError
		ce *engine.ConfigError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case errors.Is(err, pipeline.ErrNoValues):
		return ExitNoValues
	case errors.As(err, &pe), errors.As(err, &ce),
		errors.Is(err, interval.ErrInvalidInput), errors.Is(err, os.ErrNotExist):
		return ExitInvalid
	}
	return ExitIO
}
