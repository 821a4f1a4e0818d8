package orchestrator

import "time"

// SetNow replaces the clock used to stamp built executables.
func (o *Orchestrator) SetNow(now func() time.Time) {
	o.now = now
}
