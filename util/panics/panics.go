package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/kaspanet/bestchain/infrastructure/logger"
)

const exitHandlerTimeout = 5 * time.Second

// osExit is replaced in tests.
var osExit = os.Exit

// HandlePanic recovers panics, logs them together with the stack trace and
// exits with status 1. It must be called directly by a deferred statement.
func HandlePanic(log *logger.Logger) {
	err := recover()
	if err == nil {
		return
	}

	reason := fmt.Sprintf("Fatal error: %+v", err)
	exit(log, reason, debug.Stack())
}

// Exit prints the given reason to log and exits with status 1.
func Exit(log *logger.Logger, reason string) {
	exit(log, reason, nil)
}

// exit prints the given reason and the stack trace (if not nil), waits for
// the log backend to drain and exits.
func exit(log *logger.Logger, reason string, stackTrace []byte) {
	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if stackTrace != nil {
			log.Criticalf("Stack trace: %s", stackTrace)
		}
		if log.Backend().IsRunning() {
			log.Backend().Close()
		} else {
			// Nothing would reach stderr otherwise.
			fmt.Fprintln(os.Stderr, reason)
		}
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	osExit(1)
}
