package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/breathpace/internal/breath"
	"github.com/akyairhashvil/breathpace/internal/buildinfo"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/preset"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	th := m.theme()
	loc := m.locale()

	var body string
	switch m.screen {
	case screenCycles:
		body = m.renderCycles(th, loc)
	case screenSession:
		body = m.renderSession(th, loc)
	case screenHistory:
		body = m.renderHistory(th, loc)
	default:
		body = m.renderPresets(th, loc)
	}

	return th.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(th, loc),
		"",
		body,
		"",
		m.renderFooter(th, loc),
	))
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 4
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}

func (m Model) renderHeader(th Theme, loc models.Locale) string {
	sound := i18n.Translate(loc, "ui.soundOn")
	if m.prefs.Muted() {
		sound = i18n.Translate(loc, "ui.muted")
	}
	badges := fmt.Sprintf("%s · %s · %s",
		i18n.Translate(loc, "ui.theme."+string(m.prefs.Theme())),
		i18n.Translate(loc, "ui.locale."+string(loc)),
		sound)
	return th.Header.Render(i18n.Translate(loc, "ui.appName")) + "  " + th.Dim.Render(badges)
}

func (m Model) renderPresets(th Theme, loc models.Locale) string {
	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(th.Header.Render(i18n.Translate(loc, "ui.selectPreset")) + "\n")
	b.WriteString(th.Subtitle.Render(truncate(i18n.Translate(loc, "ui.selectPresetDescription"), width)) + "\n")
	b.WriteString(th.Dim.Render(i18n.Translate(loc, "ui.presetFormatHelp")) + "\n\n")

	list := m.catalog.List()
	for i, p := range list {
		name := i18n.PresetName(loc, p)
		if p.Category == models.CategoryCustom {
			name += " (" + i18n.Translate(loc, "ui.custom") + ")"
		}
		line := fmt.Sprintf("%-8s %s", preset.Pattern(*p), name)
		if i == m.cursor {
			b.WriteString(th.Selected.Render(truncate("▸ "+line, width)) + "\n")
		} else {
			b.WriteString(th.Item.Render(truncate("  "+line, width)) + "\n")
		}
	}

	if m.width > 0 && m.width < config.CompactModeThreshold {
		return b.String()
	}
	if m.cursor < len(list) {
		p := list[m.cursor]
		wrap := lipgloss.NewStyle().Width(width)
		b.WriteString("\n" + wrap.Render(i18n.PresetDescription(loc, p)) + "\n")
		if note := i18n.PresetNote(loc, p); note != "" {
			b.WriteString(th.Dim.Width(width).Render(note) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderCycles(th Theme, loc models.Locale) string {
	p := m.selected
	var b strings.Builder
	b.WriteString(th.Header.Render(fmt.Sprintf("%s  %s", i18n.PresetName(loc, p), preset.Pattern(*p))) + "\n\n")

	tabs := []struct {
		mode durationMode
		key  string
	}{{modeCycles, "ui.selectCycles"}, {modeMinutes, "ui.selectDuration"}}
	var labels []string
	for _, t := range tabs {
		label := i18n.Translate(loc, t.key)
		if t.mode == m.mode {
			labels = append(labels, th.Selected.Render("["+label+"]"))
		} else {
			labels = append(labels, th.Dim.Render(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(labels, "  ") + "\n")

	unit := i18n.Translate(loc, "ui.cycles")
	if m.mode == modeMinutes {
		unit = i18n.Translate(loc, "ui.durationMinutes")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, th.Input.Render(m.input.View()), " "+unit) + "\n")

	cycles := m.plannedCycles()
	recommended := breath.RecommendedCycles(*p)
	rec := fmt.Sprintf("%s: %d", i18n.Translate(loc, "ui.recommendedCycles"), recommended)
	if cycles == recommended {
		rec += " ★"
	}
	b.WriteString(th.Item.Render(rec) + "\n")
	b.WriteString(th.Item.Render(fmt.Sprintf("%s: %d · %s", i18n.Translate(loc, "ui.cycles"), cycles,
		FormatSessionLength(loc, breath.DurationFromCycles(*p, cycles)))) + "\n")
	b.WriteString(th.Dim.Render(i18n.Translate(loc, "ui.cyclesNote")) + "\n")
	return b.String()
}

func (m Model) renderSession(th Theme, loc models.Locale) string {
	c := m.Timer()
	if c.Preset == nil {
		return th.Dim.Render(i18n.Translate(loc, "ui.state.idle"))
	}

	var b strings.Builder
	b.WriteString(th.Subtitle.Render(fmt.Sprintf("%s  %s", i18n.PresetName(loc, c.Preset), preset.Pattern(*c.Preset))) + "\n")

	if c.State == models.TimerCompleted {
		b.WriteString("\n" + th.Complete.Render(i18n.Translate(loc, "ui.sessionComplete")) + "\n")
		b.WriteString(th.Item.Render(FormatSessionLength(loc, breath.DurationFromCycles(*c.Preset, c.MaxCycles))) + "\n")
	} else {
		phase := th.phaseStyle(c.CurrentPhase).Render(i18n.Translate(loc, "ui.phase."+string(c.CurrentPhase)))
		b.WriteString("\n" + phase + "\n")
		b.WriteString(th.Countdown.Render(FormatSeconds(loc, c.RemainingSeconds)) + "\n")
		b.WriteString(th.Item.Render(FormatCycle(loc, c)) + "\n")
	}

	bar := m.progress
	bar.FullColor = th.ProgressFull
	bar.EmptyColor = th.ProgressEmpty
	b.WriteString(bar.ViewAs(breath.Progress(c)) + "\n")
	b.WriteString(th.Dim.Render(i18n.Translate(loc, "ui.state."+string(c.State))))
	return b.String()
}

func (m Model) renderHistory(th Theme, loc models.Locale) string {
	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(th.Header.Render(i18n.Translate(loc, "ui.history.title")) + "\n\n")
	if m.history.err != nil {
		b.WriteString(th.Error.Render(m.history.err.Error()) + "\n")
		return b.String()
	}
	if len(m.history.stats) == 0 {
		b.WriteString(th.Dim.Render(i18n.Translate(loc, "ui.history.empty")) + "\n")
		return b.String()
	}

	header := strings.Join([]string{
		padRight("", historyNameWidth),
		padLeft(i18n.Translate(loc, "ui.history.sessions"), 6),
		padLeft(i18n.Translate(loc, "ui.history.completed"), 6),
		padLeft(i18n.Translate(loc, "ui.history.total"), 9),
	}, " ") + "  " + i18n.Translate(loc, "ui.history.last")
	b.WriteString(th.Subtitle.Render(header) + "\n")
	for _, st := range m.history.stats {
		line := fmt.Sprintf("%s %6d %6d %9s  %s",
			padRight(m.presetLabel(loc, st.PresetID), historyNameWidth), st.Sessions, st.Completed,
			formatDuration(time.Duration(st.ActiveSeconds)*time.Second),
			st.LastPracticed.Local().Format("2006-01-02"))
		b.WriteString(th.Item.Render(truncate(line, width)) + "\n")
	}

	b.WriteString("\n")
	for i, s := range m.history.sessions {
		if i >= config.MaxVisibleHistory {
			break
		}
		mark := "✓"
		if s.Status != models.SessionCompleted {
			mark = "·"
		}
		line := fmt.Sprintf("%s %s  %s  %d/%d", mark, s.StartedAt.Local().Format("2006-01-02 15:04"),
			m.presetLabel(loc, s.PresetID), s.CompletedCycles, s.PlannedCycles)
		if s.Status == models.SessionAbandoned {
			line += "  " + i18n.Translate(loc, "ui.history.abandoned")
		}
		b.WriteString(th.Dim.Render(truncate(line, width)) + "\n")
	}
	return b.String()
}

// historyNameWidth is the preset column of the history table, in cells.
const historyNameWidth = 24

func (m Model) presetLabel(loc models.Locale, id string) string {
	if p, ok := m.catalog.Lookup(id); ok {
		return i18n.PresetName(loc, p)
	}
	return id
}

func (m Model) renderFooter(th Theme, loc models.Locale) string {
	width := m.contentWidth()
	var lines []string
	if m.statusMessage != "" {
		style := th.Item
		if m.statusIsError {
			style = th.Error
		}
		lines = append(lines, style.Render(truncate(m.statusMessage, width)))
	}
	lines = append(lines, th.Dim.Width(width).Render(m.keys.HelpFor(m.screen, loc)))
	lines = append(lines, th.Dim.Render(copyrightLine(loc, m.now())))
	return strings.Join(lines, "\n")
}

func copyrightLine(loc models.Locale, now time.Time) string {
	return fmt.Sprintf("%s  © %d %s %s", buildinfo.Label(), buildinfo.BuildYear(now),
		i18n.Translate(loc, "ui.appName"), i18n.Translate(loc, "ui.footer.allRightsReserved"))
}
