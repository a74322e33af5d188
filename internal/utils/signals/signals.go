package signals

import (
	"os"
	"os/signal"
	"syscall"
)

// OnSignal invokes the given function in a new goroutine whenever the process
// receives an interruption or termination signal.
func OnSignal(action func(sig os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			action(sig)
		}
	}()
}
