// Package broadcast owns the advertised payload buffer and the radio
// readiness latch.
package broadcast

import (
	"sync/atomic"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
)

// Radio is the advertising capability of the BLE stack. Start begins a
// non-connectable undirected broadcast carrying the payload; Update
// replaces the payload of the running broadcast in place.
type Radio interface {
	Start(payload []byte) error
	Update(payload []byte) error
}

// Controller gates payload pushes on radio readiness. It starts in
// NotReady, where Push silently drops the cycle's values, and moves to
// Advertising exactly once when Activate is called by the radio stack.
type Controller struct {
	radio     Radio
	buf       []byte
	activated atomic.Bool
	ready     atomic.Bool
}

func New(radio Radio) *Controller {
	return &Controller{
		radio: radio,
		buf:   payload.NewBuffer(),
	}
}

// Activate is the radio stack's one-shot readiness signal. The first
// call starts the broadcast with the current buffer contents; repeat
// calls are no-ops. If the initial start fails the controller stays
// NotReady for the rest of the run, like the stack never came up.
func (c *Controller) Activate() error {
	if !c.activated.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.radio.Start(c.buf); err != nil {
		return err
	}
	c.ready.Store(true)
	return nil
}

// Push commits one cycle's values into the payload buffer and requests
// a broadcast update. Before Activate the buffer is left untouched and
// the values are discarded; nothing is queued for later. An update
// failure is returned for logging only — the next cycle recomputes the
// payload in full and tries again unconditionally.
func (c *Controller) Push(f payload.Fields) error {
	if !c.ready.Load() {
		return nil
	}
	payload.Encode(c.buf, f)
	return c.radio.Update(c.buf)
}

// Advertising reports whether the readiness latch has fired.
func (c *Controller) Advertising() bool {
	return c.ready.Load()
}
