package appshell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecPassesArgsAndCode(t *testing.T) {
	var gotArgs []string
	run := func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		gotArgs = argv
		_, _ = io.WriteString(stdout, "ok")
		return 2
	}
	var out bytes.Buffer
	code := exec(run, []string{"sample.txt", "-m", "both"}, &out, io.Discard)
	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"sample.txt", "-m", "both"}, gotArgs)
	assert.Equal(t, "ok", out.String())
}

func TestExecContextIsLive(t *testing.T) {
	run := func(ctx context.Context, _ []string, _, _ io.Writer) int {
		if ctx.Err() != nil {
			return 1
		}
		return 0
	}
	assert.Equal(t, 0, exec(run, nil, io.Discard, io.Discard))
}
