package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/breathpace/internal/breath"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/prefs"
	"github.com/akyairhashvil/breathpace/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	fired, next := m.practice.clock.deliver(msg.Gen)
	if !fired {
		return m, nil
	}
	m.practice.active++
	if m.Timer().State == models.TimerCompleted {
		m = m.recordSession(models.SessionCompleted)
	}
	return m, next
}

func (m Model) handlePresetsReloaded(msg PresetsReloadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.setError("reload presets", msg.Err)
		return m, nil
	}
	next, err := m.catalog.WithCustom(msg.Presets)
	if err != nil {
		m.setError("reload presets", err)
		return m, nil
	}
	m.catalog = next
	m.cursor = util.Clamp(m.cursor, 0, next.Len()-1)
	m.statusMessage, m.statusIsError = "", false
	return m, nil
}

func (m Model) handleReportExported(msg reportExportedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.setError("export report", msg.err)
		return m, nil
	}
	m.statusMessage = fmt.Sprintf("%s %s", i18n.Translate(m.locale(), "ui.history.exported"), msg.path)
	m.statusIsError = false
	return m, nil
}

func (m *Model) setError(context string, err error) {
	util.LogError(context, err)
	m.statusMessage = fmt.Sprintf("%s: %v", context, err)
	m.statusIsError = true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.practice.inProgress() {
		m = m.recordSession(models.SessionAbandoned)
	}
	m.practice.timer.Destroy()
	return m, tea.Quit, true
}

func handleMoveUp(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.screen {
	case screenPresets:
		m.cursor = util.Wrap(m.cursor, -1, m.catalog.Len())
	case screenCycles:
		m = m.adjustInput(1)
	}
	return m, nil, true
}

func handleMoveDown(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.screen {
	case screenPresets:
		m.cursor = util.Wrap(m.cursor, 1, m.catalog.Len())
	case screenCycles:
		m = m.adjustInput(-1)
	}
	return m, nil, true
}

func (m Model) inputBounds() (lo, hi int) {
	if m.mode == modeMinutes {
		return config.MinSessionMinutes, config.MaxSessionMinutes
	}
	return config.MinCycles, config.MaxCycles
}

func (m Model) defaultInput() int {
	if m.mode == modeMinutes {
		return config.DefaultTargetSeconds / 60
	}
	return breath.RecommendedCycles(*m.selected)
}

// inputValue is the entered number clamped to the mode's bounds; an empty
// or unparsable entry yields the default.
func (m Model) inputValue() int {
	lo, hi := m.inputBounds()
	v, err := strconv.Atoi(m.input.Value())
	if err != nil {
		return m.defaultInput()
	}
	return util.Clamp(v, lo, hi)
}

func (m Model) adjustInput(delta int) Model {
	lo, hi := m.inputBounds()
	m.input.SetValue(strconv.Itoa(util.Clamp(m.inputValue()+delta, lo, hi)))
	m.input.CursorEnd()
	return m
}

// plannedCycles converts the entry into a cycle count.
func (m Model) plannedCycles() int {
	if m.mode == modeMinutes {
		return breath.CyclesFromMinutes(*m.selected, m.inputValue())
	}
	return m.inputValue()
}

func handleToggleMode(m Model, _ string) (Model, tea.Cmd, bool) {
	cycles := m.plannedCycles()
	if m.mode == modeCycles {
		m.mode = modeMinutes
		minutes := breath.DurationFromCycles(*m.selected, cycles).Minutes
		m.input.SetValue(strconv.Itoa(util.Clamp(minutes, config.MinSessionMinutes, config.MaxSessionMinutes)))
	} else {
		m.mode = modeCycles
		m.input.SetValue(strconv.Itoa(cycles))
	}
	m.input.CursorEnd()
	return m, nil, true
}

func handleEnter(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.screen {
	case screenPresets:
		list := m.catalog.List()
		if len(list) == 0 {
			return m, nil, true
		}
		m.selected = list[m.cursor]
		m.mode = modeCycles
		m.input.SetValue(strconv.Itoa(breath.RecommendedCycles(*m.selected)))
		m.input.CursorEnd()
		m.input.Focus()
		m.screen = screenCycles
		return m, nil, true
	case screenCycles:
		next, cmd := m.startSession(m.plannedCycles())
		return next, cmd, true
	case screenSession:
		if m.Timer().State == models.TimerCompleted {
			m.practice.timer.Reset()
			m.screen = screenPresets
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m Model) startSession(cycles int) (Model, tea.Cmd) {
	m.input.Blur()
	m.practice.begin(m.now(), cycles)
	m.practice.timer.Start(m.selected, cycles)
	m.screen = screenSession
	m.statusMessage, m.statusIsError = "", false
	if !m.tickHinted && !m.prefs.TickCue() {
		m.tickHinted = true
		m.statusMessage = "[c] " + i18n.Translate(m.locale(), "ui.help.tickCue")
	}
	return m, m.practice.clock.take()
}

func handlePauseResume(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.Timer().State {
	case models.TimerRunning:
		m.practice.timer.Pause()
		return m, nil, true
	case models.TimerPaused:
		m.practice.timer.Resume()
		return m, m.practice.clock.take(), true
	default:
		next, cmd := m.startSession(m.practice.planned)
		return next, cmd, true
	}
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.practice.inProgress() {
		m = m.recordSession(models.SessionAbandoned)
	}
	m.practice.timer.Reset()
	return m, nil, true
}

func handleBack(m Model, _ string) (Model, tea.Cmd, bool) {
	switch m.screen {
	case screenCycles:
		m.input.Blur()
		m.screen = screenPresets
	case screenSession:
		if m.practice.inProgress() {
			m = m.recordSession(models.SessionAbandoned)
		}
		m.practice.timer.Reset()
		m.input.Focus()
		m.screen = screenCycles
	case screenHistory:
		if m.selected != nil {
			m.input.Focus()
			m.screen = screenCycles
		} else {
			m.screen = screenPresets
		}
	}
	return m, nil, true
}

func handleOpenHistory(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.screen == screenPresets {
		m.selected = nil
	}
	m.input.Blur()
	m = m.loadHistory()
	m.screen = screenHistory
	return m, nil, true
}

func handleCycleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.prefs.SetTheme(m.ctx, prefs.NextTheme(m.prefs.Theme())); err != nil {
		m.setError("save theme", err)
	}
	return m, nil, true
}

func handleToggleLocale(m Model, _ string) (Model, tea.Cmd, bool) {
	next := models.LocaleEN
	if m.locale() == models.LocaleEN {
		next = models.LocaleJA
	}
	if err := m.prefs.SetLocale(m.ctx, next); err != nil {
		m.setError("save locale", err)
	}
	return m, nil, true
}

func handleToggleMute(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.prefs.SetMuted(m.ctx, !m.prefs.Muted()); err != nil {
		m.setError("save mute", err)
	}
	return m, nil, true
}

func handleToggleTickCue(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.prefs.SetTickCue(m.ctx, !m.prefs.TickCue()); err != nil {
		m.setError("save tick cue", err)
	}
	return m, nil, true
}

// recordSession stores the current session once. Abandoned sessions with
// no elapsed second are dropped.
func (m Model) recordSession(status models.SessionStatus) Model {
	p := m.practice
	if p.recorded {
		return m
	}
	p.recorded = true
	c := p.timer.Context()
	if c.Preset == nil || m.store == nil {
		return m
	}
	if status == models.SessionAbandoned && p.active < 1 {
		return m
	}

	completed := c.CurrentCycle
	if status == models.SessionCompleted {
		completed = c.MaxCycles
	}
	s := models.Session{
		PresetID:        c.Preset.ID,
		PlannedCycles:   c.MaxCycles,
		CompletedCycles: completed,
		Status:          status,
		StartedAt:       p.startedAt,
		EndedAt:         m.now(),
		ActiveSeconds:   p.active,
	}
	if err := m.store.RecordSession(m.ctx, s); err != nil {
		m.setError("record session", err)
	}
	return m
}
