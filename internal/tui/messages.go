package tui

import "github.com/akyairhashvil/breathpace/internal/models"

// PresetsReloadedMsg carries a fresh load of the user presets file.
type PresetsReloadedMsg struct {
	Presets []models.Preset
	Err     error
}

type reportExportedMsg struct {
	path string
	err  error
}
