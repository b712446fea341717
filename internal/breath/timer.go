// Package breath implements the paced-breathing timer and the duration
// arithmetic around it.
package breath

import (
	"log"

	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/models"
)

// Timer sequences inhale/hold/exhale phases for a preset, one second at a
// time, until the requested number of cycles is done.
//
// Timer is not safe for concurrent use. All methods and the clock's fire
// callback must run on the same goroutine.
//
// Each notification channel has a single slot: registering a callback
// replaces the previous one.
type Timer struct {
	ctx   models.TimerContext
	clock Clock

	onUpdate      func(models.TimerContext)
	onPhaseChange func(models.Phase)
	onTick        func()
}

// NewTimer creates an idle timer driven by clock.
func NewTimer(clock Clock) *Timer {
	return &Timer{
		ctx:   idleContext(),
		clock: clock,
	}
}

func idleContext() models.TimerContext {
	return models.TimerContext{
		State:        models.TimerIdle,
		CurrentPhase: models.PhaseInhale,
	}
}

// OnUpdate registers the state-update observer.
func (t *Timer) OnUpdate(fn func(models.TimerContext)) {
	t.onUpdate = fn
}

// OnPhaseChange registers the phase-change observer.
func (t *Timer) OnPhaseChange(fn func(models.Phase)) {
	t.onPhaseChange = fn
}

// OnTick registers the countdown observer. Ticks fire only on seconds that
// do not cross a phase boundary.
func (t *Timer) OnTick(fn func()) {
	t.onTick = fn
}

// Context returns a snapshot of the timer.
func (t *Timer) Context() models.TimerContext {
	return t.ctx
}

// Start begins a session. It is a no-op while running, so a second call
// cannot restart progress. A cycle count below one is clamped to one.
func (t *Timer) Start(preset *models.Preset, cycles int) {
	if t.ctx.State == models.TimerRunning || preset == nil {
		return
	}
	if cycles < config.MinCycles {
		log.Printf("breath timer: cycles %d below minimum, using %d", cycles, config.MinCycles)
		cycles = config.MinCycles
	}

	t.ctx.Preset = preset
	t.ctx.MaxCycles = cycles
	t.ctx.CurrentCycle = 0
	t.ctx.State = models.TimerRunning

	t.enterPhase(models.PhaseInhale)
	// An observer may have paused or reset the timer.
	if t.ctx.State == models.TimerRunning {
		t.clock.Arm(config.TickInterval, t.tick)
	}
}

// Pause freezes the countdown. Only valid while running.
func (t *Timer) Pause() {
	if t.ctx.State != models.TimerRunning {
		return
	}
	t.ctx.State = models.TimerPaused
	t.clock.Disarm()
	t.notifyUpdate()
}

// Resume continues a paused session with a fresh one-second window.
func (t *Timer) Resume() {
	if t.ctx.State != models.TimerPaused {
		return
	}
	t.ctx.State = models.TimerRunning
	t.clock.Arm(config.TickInterval, t.tick)
	t.notifyUpdate()
}

// Reset returns the timer to idle from any state.
func (t *Timer) Reset() {
	t.clock.Disarm()
	t.ctx = idleContext()
	t.notifyUpdate()
}

// Destroy disarms the clock without touching state.
func (t *Timer) Destroy() {
	t.clock.Disarm()
}

func (t *Timer) tick() {
	if t.ctx.Preset == nil || t.ctx.State != models.TimerRunning {
		return
	}

	t.ctx.RemainingSeconds--
	if t.ctx.RemainingSeconds > 0 {
		if t.onTick != nil {
			t.onTick()
		}
		t.notifyUpdate()
		return
	}

	next := nextPhase(t.ctx.CurrentPhase)
	if next == models.PhaseHold && t.ctx.Preset.HoldSeconds == 0 {
		next = models.PhaseExhale
	}

	if t.ctx.CurrentPhase == models.PhaseExhale && next == models.PhaseInhale {
		t.ctx.CurrentCycle++
		if t.ctx.CurrentCycle >= t.ctx.MaxCycles {
			t.complete()
			return
		}
	}

	t.enterPhase(next)
}

func (t *Timer) enterPhase(phase models.Phase) {
	t.ctx.CurrentPhase = phase
	t.ctx.RemainingSeconds = t.ctx.Preset.PhaseSeconds(phase)
	if t.onPhaseChange != nil {
		t.onPhaseChange(phase)
	}
	t.notifyUpdate()
}

func (t *Timer) complete() {
	t.clock.Disarm()
	t.ctx.State = models.TimerCompleted
	t.ctx.RemainingSeconds = 0
	t.notifyUpdate()
}

func (t *Timer) notifyUpdate() {
	if t.onUpdate != nil {
		t.onUpdate(t.ctx)
	}
}

func nextPhase(phase models.Phase) models.Phase {
	switch phase {
	case models.PhaseInhale:
		return models.PhaseHold
	case models.PhaseHold:
		return models.PhaseExhale
	default:
		return models.PhaseInhale
	}
}
