package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered once per armed interval. Gen identifies the arming
// that scheduled it; ticks from an older arming are dropped.
type TickMsg struct {
	Gen int
}

// teaClock drives a breath.Timer through bubbletea messages so that every
// timer mutation happens inside Update.
type teaClock struct {
	gen      int
	armed    bool
	interval time.Duration
	fire     func()
	pending  tea.Cmd
}

func (c *teaClock) Arm(interval time.Duration, fire func()) {
	c.gen++
	c.interval = interval
	c.fire = fire
	c.armed = interval > 0 && fire != nil
	c.pending = nil
	if c.armed {
		c.pending = c.schedule()
	}
}

func (c *teaClock) Disarm() {
	c.gen++
	c.armed = false
	c.fire = nil
	c.pending = nil
}

func (c *teaClock) schedule() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg { return TickMsg{Gen: gen} })
}

// take hands the command scheduled by the last Arm to the caller.
func (c *teaClock) take() tea.Cmd {
	cmd := c.pending
	c.pending = nil
	return cmd
}

// deliver fires the trigger for a tick from the current arming and returns
// the command for the next one. Stale ticks report fired=false.
func (c *teaClock) deliver(gen int) (fired bool, next tea.Cmd) {
	if !c.armed || gen != c.gen {
		return false, nil
	}
	c.fire()
	if c.armed && c.gen == gen {
		return true, c.schedule()
	}
	return true, c.take()
}
