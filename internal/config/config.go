// Package config loads defaults for the almanac tools from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ALMANAC_THREADS.
const Prefix = "ALMANAC"

// Defaults mirrored by the struct tags below.
const (
	DefaultStart     = "seed"
	DefaultTerminal  = "location"
	DefaultOutput    = "text"
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "pretty"
)

// Env holds environment-based defaults. Command-line flags override them.
type Env struct {
	// Threads is the worker count per hop (0 = all CPUs, 1 = serial).
	// Env: ALMANAC_THREADS (default: 1)
	Threads int `envconfig:"THREADS" default:"1"`

	// Start is the first category of the chain.
	// Env: ALMANAC_START (default: seed)
	Start string `envconfig:"START" default:"seed"`

	// Terminal is the last category of the chain.
	// Env: ALMANAC_TERMINAL (default: location)
	Terminal string `envconfig:"TERMINAL" default:"location"`

	// Output is the report format (text, json or jsonl).
	// Env: ALMANAC_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`

	// LogLevel is DEBUG, INFO, WARN or ERROR.
	// Env: ALMANAC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is pretty or json.
	// Env: ALMANAC_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// Load reads an optional .env file and then the process environment.
// An empty envFile means ".env" in the working directory, skipped when absent;
// a named file must exist. Variables already set in the environment win over
// the file.
func Load(envFile string) (Env, error) {
	if envFile == "" {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(".env"); err != nil {
				return Env{}, fmt.Errorf("load .env: %w", err)
			}
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Env{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var env Env
	if err := envconfig.Process(Prefix, &env); err != nil {
		return Env{}, fmt.Errorf("process environment: %w", err)
	}
	return env, nil
}
