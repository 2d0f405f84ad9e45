package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/announce/internal/cli"
	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/pkg/announce"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(announce.ExitPanic)
		}
	}()

	if os.Getenv("ANNOUNCE_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		// Actions mode: surface the failure as a step annotation
		if logging.RunningInActions() {
			logging.NewActionsLogger(false).Error("%v", err)
		}
		os.Exit(announce.ExitCodeForError(err))
	}
}
