package jig

import (
	"os"
	"testing"
	"time"
)

// SetSignals replaces the termination signal source of the application.
func (a *App) SetSignals(ch <-chan os.Signal) {
	a.signals = func() (<-chan os.Signal, func()) {
		return ch, func() {}
	}
}

// SetInterruptGrace shortens the time a cancelled process gets to exit.
func SetInterruptGrace(t *testing.T, d time.Duration) {
	t.Helper()
	previous := interruptGrace
	interruptGrace = d
	t.Cleanup(func() { interruptGrace = previous })
}
