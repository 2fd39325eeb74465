// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"almanac/internal/appcore"
	"almanac/internal/cli"
	"almanac/internal/config"
	"almanac/internal/log"
	"almanac/internal/version"
)

const longHelp = `Find the lowest category value reachable from an almanac's seeds.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. start/terminal set inside the almanac file
  5. Command line flags

Environment variables:
  ALMANAC_THREADS      Workers per hop, 0 = all CPUs (default: 1)
  ALMANAC_START        First category of the chain (default: seed)
  ALMANAC_TERMINAL     Last category of the chain (default: location)
  ALMANAC_OUTPUT       Output format: text, json, jsonl (default: text)
  ALMANAC_LOG_LEVEL    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  ALMANAC_LOG_FORMAT   Log format: pretty, json (default: pretty)`

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	root := rootCmd(stdout, stderr, &code)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if len(argv) == 0 {
		_ = root.Help()
		return appcore.ExitOK
	}
	if err := root.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'almanac --help' for usage.\n", err)
		return appcore.ExitInvalid
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func rootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:           "almanac [flags] <file>...",
		Short:         "Remap seed values through an almanac's category chain",
		Long:          longHelp,
		Example: `  almanac input.txt
  almanac -m both -o jsonl input.txt
  almanac --mode ranges --threads 0 --intervals --merge input.yaml
  zcat input.txt.gz | almanac --seeds 79,14 -`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	noHeader := cli.Register(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger, err := prepare(cmd, &o, noHeader, args, stderr)
		if err != nil {
			return err
		}
		core := coreOptions(o)
		*code = appcore.Run(cmd.Context(), stdout, logger, core,
			appcore.Solve(logger, core), appcore.NewResultWriterFactory(o.Output, o.Header))
		return nil
	}

	cmd.AddCommand(traceCmd(stdout, stderr, code))
	cmd.AddCommand(lookupCmd(stdout, stderr, code))
	cmd.AddCommand(versionCmd(stdout))
	return cmd
}

func traceCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "trace [flags] <file>...",
		Short: "Print the interval set leaving every stage",
		Example: `  almanac trace -m ranges input.txt
  almanac trace -o jsonl --merge input.yaml | jq .lowest`,
		Args:  cobra.ArbitraryArgs,
	}
	noHeader := cli.Register(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger, err := prepare(cmd, &o, noHeader, args, stderr)
		if err != nil {
			return err
		}
		core := coreOptions(o)
		*code = appcore.Run(cmd.Context(), stdout, logger, core,
			appcore.Trace(logger, core), appcore.NewHopWriterFactory(o.Output, o.Header))
		return nil
	}
	return cmd
}

func lookupCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	var o cli.Options
	cmd := &cobra.Command{
		Use:   "lookup [flags] <file>...",
		Short: "Follow single values through the chain, category by category",
		Example: `  almanac lookup input.txt
  almanac lookup --value 79 --value 14 -o json input.txt`,
		Args:  cobra.ArbitraryArgs,
	}
	noHeader := cli.Register(cmd.Flags(), &o)
	cli.RegisterLookup(cmd.Flags(), &o)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger, err := prepare(cmd, &o, noHeader, args, stderr)
		if err != nil {
			return err
		}
		core := coreOptions(o)
		*code = appcore.Run(cmd.Context(), stdout, logger, core,
			appcore.Lookup(logger, core), appcore.NewLookupWriterFactory(o.Output, o.Header))
		return nil
	}
	return cmd
}

func versionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(stdout, "almanac version %s\n", version.Version)
			_, _ = fmt.Fprintf(stdout, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(stdout, "  built:  %s\n", version.Date)
		},
	}
}

// prepare loads the environment, finalizes o and builds the logger.
func prepare(cmd *cobra.Command, o *cli.Options, noHeader *bool, args []string, stderr io.Writer) (*slog.Logger, error) {
	env, err := config.Load(o.EnvFile)
	if err != nil {
		return nil, err
	}
	if err := cli.AfterParse(cmd.Flags(), o, noHeader, args, env); err != nil {
		return nil, err
	}
	level := o.LogLevel
	if o.Quiet {
		level = "ERROR"
	}
	return log.New(stderr, o.LogFormat, level), nil
}

func coreOptions(o cli.Options) appcore.Options {
	return appcore.Options{
		Files:            o.Files,
		Start:            o.Start,
		Terminal:         o.Terminal,
		StartExplicit:    o.StartExplicit,
		TerminalExplicit: o.TerminalExplicit,
		Modes:            o.Modes(),
		Seeds:            o.Seeds,
		Values:           o.Values,
		Threads:          o.Threads,
		Intervals:        o.Intervals,
		Merge:            o.Merge,
	}
}
