package tui

import (
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) loadHistory() Model {
	m.history = historyView{}
	if m.store == nil {
		return m
	}
	stats, err := m.store.SessionStats(m.ctx)
	if err != nil {
		m.history.err = err
		m.setError("load history", err)
		return m
	}
	sessions, err := m.store.ListSessions(m.ctx, config.HistoryLimit)
	if err != nil {
		m.history.err = err
		m.setError("load history", err)
		return m
	}
	m.history.stats = stats
	m.history.sessions = sessions
	return m
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	report := Report{
		GeneratedAt: m.now(),
		Stats:       m.history.stats,
		Sessions:    m.history.sessions,
		PresetName:  m.reportPresetName,
	}
	dir := m.reportsDir
	return m, func() tea.Msg {
		path, err := ExportReport(dir, report)
		return reportExportedMsg{path: path, err: err}
	}, true
}

// reportPresetName names presets in the PDF. The core PDF fonts only cover
// Latin text, so built-ins use their English names.
func (m Model) reportPresetName(id string) string {
	p, ok := m.catalog.Lookup(id)
	if !ok {
		return id
	}
	return i18n.PresetName(models.LocaleEN, p)
}

// handleClearHistory wipes history on the second consecutive press.
func handleClearHistory(m Model, _ string) (Model, tea.Cmd, bool) {
	if !m.confirmClear {
		m.confirmClear = true
		m.statusMessage, m.statusIsError = "x: "+i18n.Translate(m.locale(), "ui.history.confirmClear"), false
		return m, nil, true
	}
	m.confirmClear = false
	if m.store != nil {
		if err := m.store.ClearHistory(m.ctx); err != nil {
			m.setError("clear history", err)
			return m, nil, true
		}
	}
	m = m.loadHistory()
	m.statusMessage, m.statusIsError = i18n.Translate(m.locale(), "ui.history.cleared"), false
	return m, nil, true
}
