package breath

import (
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/models"
)

// Duration is a session length split for display.
type Duration struct {
	Minutes int
	Seconds int
}

// CycleSeconds is the length of one inhale/hold/exhale cycle.
func CycleSeconds(p models.Preset) int {
	return p.InhaleSeconds + p.HoldSeconds + p.ExhaleSeconds
}

// RecommendedCycles returns how many cycles fit in the default ten-minute session.
func RecommendedCycles(p models.Preset) int {
	return RecommendedCyclesFor(p, config.DefaultTargetSeconds)
}

// RecommendedCyclesFor returns how many whole cycles fit in targetSeconds, never less than one.
func RecommendedCyclesFor(p models.Preset, targetSeconds int) int {
	cycle := CycleSeconds(p)
	if cycle <= 0 {
		return 1
	}
	return max(1, targetSeconds/cycle)
}

// DurationFromCycles returns the total session length for the given cycle count.
func DurationFromCycles(p models.Preset, cycles int) Duration {
	total := CycleSeconds(p) * cycles
	return Duration{
		Minutes: total / 60,
		Seconds: total % 60,
	}
}

// CyclesFromMinutes returns how many cycles fit in a session of the given minutes.
func CyclesFromMinutes(p models.Preset, minutes int) int {
	return RecommendedCyclesFor(p, minutes*60)
}

// ElapsedSeconds reports how far into the session a snapshot is.
func ElapsedSeconds(c models.TimerContext) int {
	if c.Preset == nil {
		return 0
	}
	p := *c.Preset
	if c.State == models.TimerCompleted {
		return CycleSeconds(p) * c.MaxCycles
	}
	elapsed := CycleSeconds(p) * c.CurrentCycle
	switch c.CurrentPhase {
	case models.PhaseHold:
		elapsed += p.InhaleSeconds
	case models.PhaseExhale:
		elapsed += p.InhaleSeconds + p.HoldSeconds
	}
	return elapsed + p.PhaseSeconds(c.CurrentPhase) - c.RemainingSeconds
}

// Progress returns the completed fraction of the session in [0, 1].
func Progress(c models.TimerContext) float64 {
	if c.Preset == nil || c.MaxCycles <= 0 {
		return 0
	}
	total := CycleSeconds(*c.Preset) * c.MaxCycles
	if total <= 0 {
		return 0
	}
	ratio := float64(ElapsedSeconds(c)) / float64(total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
