package config

import "time"

// Timer cadence.
const (
	TickInterval = time.Second
)

// Session sizing.
const (
	// DefaultTargetSeconds is the session length used for recommended cycles (10 minutes).
	DefaultTargetSeconds = 600
	MinCycles            = 1
	MaxCycles            = 999
	MinSessionMinutes    = 1
	MaxSessionMinutes    = 60
)

// Preference storage keys.
const (
	LocaleKey  = "breath-pace-locale"
	ThemeKey   = "breath-pace-theme"
	MutedKey   = "breath-pace-muted"
	TickCueKey = "breath-pace-tick-cue"
)

// Environment variables.
const (
	EnvDebug     = "BREATH_DEBUG"
	EnvMode      = "BREATH_ENV"
	EnvBuildDate = "BUILD_DATE"
)

// EnvProduction is the BREATH_ENV value that silences diagnostics.
const EnvProduction = "production"

// Application files.
const (
	AppName         = "breathpace"
	DisplayName     = "Breath Pace"
	DBFileName      = "breathpace.db"
	PresetsFileName = "presets.yaml"
	DebugLogName    = "debug.log"
	HistoryLimit    = 50
)
