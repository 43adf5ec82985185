/*
Package app signal handling provides cancellation and cleanup for the
Linegrep application. It handles SIGINT and SIGTERM, cancelling any in-flight
file read on the first signal and forcing termination on the second.
*/
package app

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sonemaro/linegrep/pkg/logger"
)

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// setupSignalHandling initializes signal handling for graceful shutdown
func (a *App) setupSignalHandling() {
	state := &signalState{}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan,
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	go a.handleSignals(sigChan, state)
}

// handleSignals processes incoming system signals
func (a *App) handleSignals(sigChan chan os.Signal, state *signalState) {
	for sig := range sigChan {
		a.log.WithFields(logger.Fields{
			"signal": sig.String(),
		}).Debug("Received system signal")

		if !state.shutdownInitiated.CompareAndSwap(false, true) {
			a.log.Warn("Received second interrupt, terminating immediately")
			os.Exit(1)
		}

		a.log.Info("Interrupt received, cancelling operation")
		a.cancel()
	}
}
