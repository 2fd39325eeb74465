package engine

import (
	"errors"
	"fmt"
)

// Configuration error kinds. Every ConfigError wraps exactly one of these.
var (
	ErrInvalidRule    = errors.New("invalid rule")
	ErrDuplicateStage = errors.New("duplicate stage")
	ErrMissingStage   = errors.New("missing stage")
	ErrCycle          = errors.New("chain does not reach terminal")
)

// ConfigError is a fatal stage-table problem found at construction time.
// RuleIndex is -1 when the problem is not tied to a single rule.
type ConfigError struct {
	Category  string
	RuleIndex int
	Err       error
	Detail    string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("stage %q: %v", e.Category, e.Err)
	if e.RuleIndex >= 0 {
		msg = fmt.Sprintf("stage %q rule #%d: %v", e.Category, e.RuleIndex, e.Err)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
