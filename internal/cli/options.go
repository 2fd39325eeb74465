// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"almanac/internal/cliutil"
	"almanac/internal/config"
	"almanac/internal/log"
	"almanac/internal/pipeline"
	"almanac/internal/writers"
)

// ModeBoth runs the seeds and ranges readings side by side.
const ModeBoth = "both"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Files   []string
	EnvFile string

	// Chain
	Start            string
	Terminal         string
	StartExplicit    bool // set by flag, wins over the almanac file
	TerminalExplicit bool
	Mode             string
	Seeds            []int64 // overrides the file's seeds when non-empty
	Values           []int64 // lookup only

	// Performance
	Threads int

	// Output
	Output    string
	Intervals bool
	Merge     bool
	Header    bool // true unless --no-header

	// Logging
	Quiet     bool
	LogLevel  string
	LogFormat string
}

// Modes expands Mode into the readings to compute.
func (o Options) Modes() []pipeline.Mode {
	if o.Mode == ModeBoth {
		return []pipeline.Mode{pipeline.ModeSeeds, pipeline.ModeRanges}
	}
	return []pipeline.Mode{pipeline.Mode(o.Mode)}
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool consumed by AfterParse.
func Register(fs *pflag.FlagSet, o *Options) *bool {
	fs.StringVar(&o.EnvFile, "env-file", "", "path to .env file (default: .env in the working directory, if present)")

	fs.StringVar(&o.Start, "start", config.DefaultStart, "first category of the chain")
	fs.StringVar(&o.Terminal, "terminal", config.DefaultTerminal, "last category of the chain")
	fs.StringVarP(&o.Mode, "mode", "m", string(pipeline.ModeSeeds), "seed reading: seeds | ranges | both")
	fs.Int64SliceVarP(&o.Seeds, "seeds", "s", nil, "seed values overriding the file (repeatable or comma-separated)")

	fs.IntVarP(&o.Threads, "threads", "t", 1, "workers per hop (0 = all CPUs, 1 = serial)")

	fs.StringVarP(&o.Output, "output", "o", config.DefaultOutput, "output: text | json | jsonl")
	fs.BoolVar(&o.Intervals, "intervals", false, "include the final interval set in results")
	fs.BoolVar(&o.Merge, "merge", false, "sort and merge reported interval sets")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress table headers in text output")

	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.StringVar(&o.LogLevel, "log-level", config.DefaultLogLevel, "log level: DEBUG | INFO | WARN | ERROR")
	fs.StringVar(&o.LogFormat, "log-format", config.DefaultLogFormat, "log format: pretty | json")
	return &noHeader
}

// RegisterLookup adds the flags specific to the lookup command.
func RegisterLookup(fs *pflag.FlagSet, o *Options) {
	fs.Int64SliceVar(&o.Values, "value", nil, "value to follow through the chain (repeatable; default: the file's seeds)")
}

// AfterParse finalizes header, fills unset flags from env, expands
// positionals, then runs shared validation.
func AfterParse(fs *pflag.FlagSet, o *Options, noHeader *bool, posArgs []string, env config.Env) error {
	o.Header = !*noHeader
	applyEnv(fs, o, env)

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return err
	}
	o.Files = exp
	return Validate(o)
}

// applyEnv copies env values into flags the user did not set.
func applyEnv(fs *pflag.FlagSet, o *Options, env config.Env) {
	o.StartExplicit = fs.Changed("start")
	o.TerminalExplicit = fs.Changed("terminal")
	if !o.StartExplicit {
		o.Start = env.Start
	}
	if !o.TerminalExplicit {
		o.Terminal = env.Terminal
	}
	if !fs.Changed("threads") {
		o.Threads = env.Threads
	}
	if !fs.Changed("output") {
		o.Output = env.Output
	}
	if !fs.Changed("log-level") {
		o.LogLevel = env.LogLevel
	}
	if !fs.Changed("log-format") {
		o.LogFormat = env.LogFormat
	}
}

// ParseArgs registers and parses all shared flags and returns Options.
func ParseArgs(fs *pflag.FlagSet, argv []string, env config.Env) (Options, error) {
	var opt Options
	noHeader := Register(fs, &opt)
	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	return opt, AfterParse(fs, &opt, noHeader, fs.Args(), env)
}

// Validate applies shared CLI invariants used by all commands.
func Validate(o *Options) error {
	if len(o.Files) == 0 {
		return errors.New("at least one almanac file is required (use - for stdin)")
	}
	if o.Start == "" || o.Terminal == "" {
		return errors.New("--start and --terminal must not be empty")
	}
	if o.Mode != ModeBoth {
		if _, err := pipeline.ParseMode(o.Mode); err != nil {
			return fmt.Errorf("invalid --mode %q", o.Mode)
		}
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !writers.ValidFormat(o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if !log.ValidFormat(o.LogFormat) {
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	return nil
}
