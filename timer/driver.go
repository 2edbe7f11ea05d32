package timer

import (
	"context"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// Ticker delivers the one-second ticks that advance a running timer.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type clockTicker struct {
	*time.Ticker
}

func (t clockTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewClockTicker returns a Ticker backed by time.Ticker.
func NewClockTicker() Ticker {
	return clockTicker{time.NewTicker(time.Second)}
}

// DriverOption configures a Driver.
type DriverOption func(d *Driver)

// WithTicker replaces the function that creates tickers.
func WithTicker(newTicker func() Ticker) DriverOption {
	return func(d *Driver) {
		d.newTicker = newTicker
	}
}

// Driver owns a Machine and applies ticks, commands and micro-break clears
// to it from a single goroutine.
type Driver struct {
	m         *Machine
	newTicker func() Ticker
	ticker    Ticker
	cmds      chan func()
	done      chan struct{}
}

// NewDriver returns a driver for m. Micro-breaks scheduled by m end through
// the driver's loop.
func NewDriver(m *Machine, opts ...DriverOption) *Driver {
	d := &Driver{
		m:         m,
		newTicker: NewClockTicker,
		cmds:      make(chan func(), 16),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	m.sched = d

	return d
}

// Schedule implements Scheduler by posting fn to the loop once d has elapsed.
func (d *Driver) Schedule(after time.Duration, fn func()) func() {
	t := time.AfterFunc(after, func() {
		d.post(fn)
	})

	return func() {
		t.Stop()
	}
}

// post queues fn for the loop. It reports false once the loop has exited.
func (d *Driver) post(fn func()) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	select {
	case d.cmds <- fn:
		return true
	case <-d.done:
		return false
	}
}

func (d *Driver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}

// syncTicker runs the ticker only while the machine is counting down.
func (d *Driver) syncTicker() {
	counting := d.m.Status().Counting()

	switch {
	case counting && d.ticker == nil:
		d.ticker = d.newTicker()
	case !counting:
		d.stopTicker()
	}
}

func (d *Driver) tickC() <-chan time.Time {
	if d.ticker == nil {
		return nil
	}

	return d.ticker.C()
}

// Run applies events to the machine until ctx is cancelled, then writes the
// final state.
func (d *Driver) Run(ctx context.Context) {
	defer close(d.done)

	d.syncTicker()

	for {
		select {
		case <-ctx.Done():
			d.stopTicker()
			d.m.Close()

			return
		case <-d.tickC():
			d.m.Tick()
		case fn := <-d.cmds:
			fn()
		}

		d.syncTicker()
	}
}

// Start starts or resumes the timer.
func (d *Driver) Start() {
	d.post(d.m.Start)
}

// Pause stops the ticker, then pauses the timer.
func (d *Driver) Pause() {
	d.post(func() {
		d.stopTicker()
		d.m.Pause()
	})
}

// Reset stops the ticker, then resets the timer.
func (d *Driver) Reset() {
	d.post(func() {
		d.stopTicker()
		d.m.Reset()
	})
}

// UpdateSettings forwards new settings to the timer.
func (d *Driver) UpdateSettings(s models.Settings) {
	d.post(func() {
		d.m.UpdateSettings(s)
	})
}

// SelectTag sets the tag of the next recorded session.
func (d *Driver) SelectTag(id string) {
	d.post(func() {
		d.m.SelectTag(id)
	})
}

// State is a copy of the machine state taken inside the loop.
type State struct {
	Settings   models.Settings
	Snapshot   models.Snapshot
	Tags       []models.Tag
	MicroBreak bool
}

// State returns the current machine state. After Run has returned it reads
// the machine directly.
func (d *Driver) State() State {
	read := func() State {
		return State{
			Settings:   d.m.Settings(),
			Snapshot:   d.m.Snapshot(),
			Tags:       d.m.Tags(),
			MicroBreak: d.m.MicroBreak(),
		}
	}

	reply := make(chan State, 1)

	if !d.post(func() { reply <- read() }) {
		return read()
	}

	select {
	case s := <-reply:
		return s
	case <-d.done:
		// the loop may exit after accepting the request
		select {
		case s := <-reply:
			return s
		default:
			return read()
		}
	}
}
