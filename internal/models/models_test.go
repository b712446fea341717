package models

import "testing"

func TestTimerStateConstants(t *testing.T) {
	if TimerIdle != "idle" {
		t.Fatalf("TimerIdle = %q", TimerIdle)
	}
	if TimerRunning != "running" {
		t.Fatalf("TimerRunning = %q", TimerRunning)
	}
	if TimerPaused != "paused" {
		t.Fatalf("TimerPaused = %q", TimerPaused)
	}
	if TimerCompleted != "completed" {
		t.Fatalf("TimerCompleted = %q", TimerCompleted)
	}
}

func TestPresetPhaseSeconds(t *testing.T) {
	p := Preset{ID: "x", InhaleSeconds: 4, HoldSeconds: 0, ExhaleSeconds: 6}
	cases := []struct {
		phase Phase
		want  int
	}{
		{PhaseInhale, 4},
		{PhaseHold, 0},
		{PhaseExhale, 6},
		{Phase("bogus"), 0},
	}
	for _, tc := range cases {
		if got := p.PhaseSeconds(tc.phase); got != tc.want {
			t.Fatalf("PhaseSeconds(%s) = %d, want %d", tc.phase, got, tc.want)
		}
	}
}

func TestTimerContextZeroValue(t *testing.T) {
	var c TimerContext
	if c.Preset != nil {
		t.Fatalf("expected nil preset by default")
	}
	if c.RemainingSeconds != 0 || c.CurrentCycle != 0 || c.MaxCycles != 0 {
		t.Fatalf("expected zero counters by default")
	}
}
