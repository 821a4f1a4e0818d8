package jig

import (
	"os"
	"runtime"
	"sync"
)

// Process is a running subprocess that can be asked to stop.
type Process interface {
	Signal(sig os.Signal) error
	Kill() error
}

// Interruption holds the cleanup callbacks and subprocesses of one run.
// Interrupt signals every tracked process and runs every callback once.
type Interruption struct {
	mu          sync.Mutex
	nextID      uint64
	callbacks   []callback
	processes   map[uint64]Process
	interrupted bool
}

type callback struct {
	id uint64
	fn func()
}

// NewInterruption creates an empty registry.
func NewInterruption() *Interruption {
	return &Interruption{processes: make(map[uint64]Process)}
}

// OnInterrupt registers fn to run when the run is interrupted. The returned
// function deregisters it; after that, or after fn ran, it is a no-op.
// Callbacks registered after an interrupt never run.
func (i *Interruption) OnInterrupt(fn func()) (cancel func()) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.interrupted {
		return func() {}
	}

	i.nextID++
	id := i.nextID
	i.callbacks = append(i.callbacks, callback{id: id, fn: fn})

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		for idx, cb := range i.callbacks {
			if cb.id == id {
				i.callbacks = append(i.callbacks[:idx], i.callbacks[idx+1:]...)
				return
			}
		}
	}
}

// Track registers a running process. The returned release function must be
// called once the process has exited.
func (i *Interruption) Track(p Process) (release func()) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.nextID++
	id := i.nextID
	i.processes[id] = p

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		delete(i.processes, id)
	}
}

// Tracked returns the number of processes currently tracked.
func (i *Interruption) Tracked() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.processes)
}

// Interrupted reports whether Interrupt has been called.
func (i *Interruption) Interrupted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.interrupted
}

// Interrupt signals every tracked process, then runs the registered
// callbacks in registration order on the calling goroutine. Only the first
// call has any effect.
func (i *Interruption) Interrupt() {
	i.mu.Lock()
	if i.interrupted {
		i.mu.Unlock()
		return
	}
	i.interrupted = true

	processes := make([]Process, 0, len(i.processes))
	for _, p := range i.processes {
		processes = append(processes, p)
	}
	clear(i.processes)

	callbacks := i.callbacks
	i.callbacks = nil
	i.mu.Unlock()

	for _, p := range processes {
		stop(p)
	}
	for _, cb := range callbacks {
		cb.fn()
	}
}

func stop(p Process) {
	// Windows cannot deliver os.Interrupt to another process.
	if runtime.GOOS == "windows" {
		_ = p.Kill()
		return
	}
	if err := p.Signal(os.Interrupt); err != nil {
		_ = p.Kill()
	}
}
