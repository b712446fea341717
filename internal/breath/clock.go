package breath

import "time"

// Clock arms and disarms the recurring trigger that drives a Timer.
// Arming replaces any trigger that is already armed.
type Clock interface {
	Arm(interval time.Duration, fire func())
	Disarm()
}

// ManualClock is a virtual Clock advanced explicitly by its owner. It is
// used by tests and by drivers that pump time from their own loop.
type ManualClock struct {
	interval time.Duration
	fire     func()
	armed    bool
	elapsed  time.Duration
}

// NewManualClock returns a disarmed virtual clock.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Arm starts a fresh window; time accumulated before the call is discarded.
func (c *ManualClock) Arm(interval time.Duration, fire func()) {
	c.interval = interval
	c.fire = fire
	c.armed = interval > 0 && fire != nil
	c.elapsed = 0
}

func (c *ManualClock) Disarm() {
	c.armed = false
	c.fire = nil
	c.elapsed = 0
}

// Armed reports whether a trigger is live.
func (c *ManualClock) Armed() bool {
	return c.armed
}

// Advance moves virtual time forward, firing once per full interval.
// Time that passes while disarmed is lost.
func (c *ManualClock) Advance(d time.Duration) {
	if !c.armed {
		return
	}
	c.elapsed += d
	for c.armed && c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.fire()
	}
}
