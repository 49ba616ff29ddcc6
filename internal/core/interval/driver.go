package interval

import (
	"context"
	"sync"
	"time"
)

// Driver calls Machine.Tick at a fixed cadence while the session is active.
type Driver struct {
	machine  *Machine
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver creates a driver for machine. Non-positive intervals default to one second.
func NewDriver(machine *Machine, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Second
	}
	return &Driver{machine: machine, interval: interval}
}

// Start launches the ticking loop. Calling Start on a running driver is a no-op.
func (driver *Driver) Start(ctx context.Context) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	driver.cancel = cancel
	driver.done = done
	go driver.run(runCtx, done)
}

// Stop terminates the ticking loop and waits for it to exit.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	cancel := driver.cancel
	done := driver.done
	driver.cancel = nil
	driver.done = nil
	driver.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (driver *Driver) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	var ticker *time.Ticker
	var tickC <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer stopTicker()

	// A paused or settings-open session holds no ticker; resuming starts a fresh full interval.
	syncTicker := func() {
		if !driver.machine.Active() {
			stopTicker()
			return
		}
		if ticker == nil {
			ticker = time.NewTicker(driver.interval)
			tickC = ticker.C
		}
	}
	syncTicker()

	for {
		select {
		case <-ctx.Done():
			return
		case <-driver.machine.wakeups():
			syncTicker()
		case <-tickC:
			driver.machine.Tick()
		}
	}
}
