package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lyricpro/internal/failure"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps err to the process status; an interrupted run is a general
// failure, not one of the conversion error kinds.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return failure.ExitGeneral
	}
	return failure.ExitCode(err)
}
