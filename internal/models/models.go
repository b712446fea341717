package models

import "time"

// Phase is one segment of a breathing cycle.
type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold   Phase = "hold"
	PhaseExhale Phase = "exhale"
)

// TimerState enumerates the lifecycle states of a breath timer.
type TimerState string

const (
	TimerIdle      TimerState = "idle"
	TimerRunning   TimerState = "running"
	TimerPaused    TimerState = "paused"
	TimerCompleted TimerState = "completed"
)

// Category groups presets for display.
type Category string

const (
	CategoryNeiyang Category = "neiyang"
	CategoryDaily   Category = "daily"
	CategoryCustom  Category = "custom"
)

// Preset is a named breathing technique. Presets are immutable once catalogued.
type Preset struct {
	ID            string
	InhaleSeconds int
	HoldSeconds   int
	ExhaleSeconds int
	Category      Category

	// Built-in presets are described through translation keys; user presets
	// carry literal text instead.
	NameKey        string
	DescriptionKey string
	NoteKey        string
	Name           string
	Description    string
}

// PhaseSeconds returns the configured length of phase.
func (p Preset) PhaseSeconds(phase Phase) int {
	switch phase {
	case PhaseInhale:
		return p.InhaleSeconds
	case PhaseHold:
		return p.HoldSeconds
	case PhaseExhale:
		return p.ExhaleSeconds
	}
	return 0
}

// TimerContext is an observable snapshot of a breath timer.
type TimerContext struct {
	State            TimerState
	CurrentPhase     Phase
	RemainingSeconds int
	CurrentCycle     int
	MaxCycles        int
	Preset           *Preset // nil while idle
}

// SessionStatus records how a practice session ended.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// Session is one recorded practice run.
type Session struct {
	ID              string
	PresetID        string
	PlannedCycles   int
	CompletedCycles int
	Status          SessionStatus
	StartedAt       time.Time
	EndedAt         time.Time
	ActiveSeconds   int
}

// PresetStats aggregates history for a single preset.
type PresetStats struct {
	PresetID      string
	Sessions      int
	Completed     int
	ActiveSeconds int
	LastPracticed time.Time
}

// Locale is a supported UI language.
type Locale string

const (
	LocaleJA Locale = "ja"
	LocaleEN Locale = "en"
)

// Theme is the user's colour scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)
