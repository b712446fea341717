package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/breathpace/internal/breath"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatSessionLength renders an estimate such as "About 10 min 30 sec" or
// "約10分30秒". Zero parts are left out.
func FormatSessionLength(locale models.Locale, d breath.Duration) string {
	sep := " "
	if locale == models.LocaleJA {
		sep = ""
	}
	parts := []string{i18n.Translate(locale, "ui.durationAbout")}
	if d.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d%s%s", d.Minutes, sep, i18n.Translate(locale, "ui.durationMinutes")))
	}
	if d.Seconds > 0 || d.Minutes == 0 {
		parts = append(parts, fmt.Sprintf("%d%s%s", d.Seconds, sep, i18n.Translate(locale, "ui.durationSeconds")))
	}
	return strings.Join(parts, sep)
}

// FormatCycle renders the 1-based cycle in progress, e.g. "cycle 3 / 10".
func FormatCycle(locale models.Locale, c models.TimerContext) string {
	current := c.CurrentCycle + 1
	if current > c.MaxCycles {
		current = c.MaxCycles
	}
	of := i18n.Translate(locale, "ui.of")
	unit := i18n.Translate(locale, "ui.cycle")
	if locale == models.LocaleJA {
		return fmt.Sprintf("%d %s %d%s", current, of, c.MaxCycles, unit)
	}
	return fmt.Sprintf("%s %d %s %d", unit, current, of, c.MaxCycles)
}

// FormatSeconds renders a remaining phase length, e.g. "4 sec" or "4秒".
func FormatSeconds(locale models.Locale, s int) string {
	if locale == models.LocaleJA {
		return fmt.Sprintf("%d%s", s, i18n.Translate(locale, "ui.seconds"))
	}
	return fmt.Sprintf("%d %s", s, i18n.Translate(locale, "ui.seconds"))
}

// formatDuration renders a total as hh:mm:ss, or mm:ss under an hour.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// padRight fits s into exactly width terminal cells, left aligned.
func padRight(s string, width int) string {
	s = truncate(s, width)
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// padLeft fits s into exactly width terminal cells, right aligned.
func padLeft(s string, width int) string {
	s = truncate(s, width)
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s = strings.Repeat(" ", gap) + s
	}
	return s
}
