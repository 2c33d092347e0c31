package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// setupInterruptHandler exits with the conventional SIGINT status when the
// run is interrupted. Nothing needs unwinding: every write the wizard makes
// is a single whole-file operation and the commit itself only happens after
// the final confirmation, so an interrupt never leaves partial state behind.
func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nCancelled. No commit was created.")
		os.Exit(130) // Standard exit code for SIGINT
	}()
}
