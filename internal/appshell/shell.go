// Package appshell adapts a RunContext-style entry point to a process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by the command entry points.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT and SIGTERM cancel the
// context; a run cut short that still reports success exits 130.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
