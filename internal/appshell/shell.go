package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the context-aware entry point every tool app exposes.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires a tool app to the process: SIGINT/SIGTERM cancel the
// context, a bare invocation shows help, and interrupted runs exit 130.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
