package tui

import (
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Subtitle      lipgloss.Style
	Item          lipgloss.Style
	Selected      lipgloss.Style
	Inhale        lipgloss.Style
	Hold          lipgloss.Style
	Exhale        lipgloss.Style
	Countdown     lipgloss.Style
	Complete      lipgloss.Style
	Input         lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	ProgressFull  string
	ProgressEmpty string
}

var Themes = map[models.Theme]Theme{
	models.ThemeLight: {
		Name:          "Light",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("31"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("24")).Bold(true),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Inhale:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Hold:          lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
		Exhale:        lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Countdown:     lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true).Padding(1, 4),
		Complete:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("31")).Padding(0, 1).Width(12),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		ProgressFull:  "#2E7D9A",
		ProgressEmpty: "#D0D7DE",
	},
	models.ThemeDark: {
		Name:          "Dark",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("67"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Item:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Inhale:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Hold:          lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		Exhale:        lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		Countdown:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 4),
		Complete:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("67")).Padding(0, 1).Width(12),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ProgressFull:  "#5FAFD7",
		ProgressEmpty: "#3A3A3A",
	},
}

// themeFor returns the styles for an effective (light or dark) theme.
func themeFor(t models.Theme) Theme {
	if th, ok := Themes[t]; ok {
		return th
	}
	return Themes[models.ThemeDark]
}

func (t Theme) phaseStyle(p models.Phase) lipgloss.Style {
	switch p {
	case models.PhaseHold:
		return t.Hold
	case models.PhaseExhale:
		return t.Exhale
	default:
		return t.Inhale
	}
}
