// internal/cli/options_test.go
package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/config"
	"almanac/internal/pipeline"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

var defaultEnv = config.Env{
	Threads:   1,
	Start:     config.DefaultStart,
	Terminal:  config.DefaultTerminal,
	Output:    config.DefaultOutput,
	LogLevel:  config.DefaultLogLevel,
	LogFormat: config.DefaultLogFormat,
}

func mustParse(t *testing.T, env config.Env, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args, env)
	require.NoError(t, err)
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, defaultEnv, "input.txt")
	assert.Equal(t, []string{"input.txt"}, o.Files)
	assert.Equal(t, "seed", o.Start)
	assert.Equal(t, "location", o.Terminal)
	assert.False(t, o.StartExplicit)
	assert.Equal(t, []pipeline.Mode{pipeline.ModeSeeds}, o.Modes())
	assert.True(t, o.Header)
	assert.Equal(t, "text", o.Output)
	assert.Equal(t, 1, o.Threads)
}

func TestFlagsOverrideEnv(t *testing.T) {
	env := defaultEnv
	env.Threads = 8
	env.Output = "json"
	env.Start = "soil"

	o := mustParse(t, env, "--output", "jsonl", "--no-header", "a.txt")
	assert.Equal(t, 8, o.Threads, "unset flag takes env value")
	assert.Equal(t, "jsonl", o.Output, "explicit flag wins")
	assert.Equal(t, "soil", o.Start)
	assert.False(t, o.Header)

	o = mustParse(t, env, "--start", "water", "a.txt")
	assert.Equal(t, "water", o.Start)
	assert.True(t, o.StartExplicit)
}

func TestSeedsAndMode(t *testing.T) {
	o := mustParse(t, defaultEnv, "-m", "both", "--seeds", "79,14", "-s", "55", "-s", "13", "-")
	assert.Equal(t, []int64{79, 14, 55, 13}, o.Seeds)
	assert.Equal(t, []pipeline.Mode{pipeline.ModeSeeds, pipeline.ModeRanges}, o.Modes())
	assert.Equal(t, []string{"-"}, o.Files)
}

func TestLookupValues(t *testing.T) {
	var o Options
	fs := newFS()
	noHeader := Register(fs, &o)
	RegisterLookup(fs, &o)
	require.NoError(t, fs.Parse([]string{"--value", "79", "--value", "13", "x.txt"}))
	require.NoError(t, AfterParse(fs, &o, noHeader, fs.Args(), defaultEnv))
	assert.Equal(t, []int64{79, 13}, o.Values)
}

func TestValidationErrors(t *testing.T) {
	cases := map[string][]string{
		"no files":       {"--mode", "seeds"},
		"bad mode":       {"--mode", "pairs", "a.txt"},
		"bad output":     {"--output", "fasta", "a.txt"},
		"negative thr":   {"--threads", "-1", "a.txt"},
		"bad log format": {"--log-format", "xml", "a.txt"},
		"empty start":    {"--start", "", "a.txt"},
		"bad seed":       {"--seeds", "x", "a.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args, defaultEnv)
			assert.Error(t, err)
		})
	}
}
