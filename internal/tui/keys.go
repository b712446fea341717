package tui

import tea "github.com/charmbracelet/bubbletea"

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Keys: []string{"ctrl+c"}, Handler: handleQuit, Priority: 100})

	r.Register(KeyBinding{Keys: []string{"up", "k"}, Label: "↑↓", HelpKey: "ui.help.move",
		Handler: handleMoveUp, Screens: []screen{screenPresets, screenCycles}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Label: "↑↓",
		Handler: handleMoveDown, Screens: []screen{screenPresets, screenCycles}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"left"}, Handler: handleMoveDown, Screens: []screen{screenCycles}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"right"}, Handler: handleMoveUp, Screens: []screen{screenCycles}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"tab"}, Label: "tab", HelpKey: "ui.help.mode",
		Handler: handleToggleMode, Screens: []screen{screenCycles}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"enter"}, Label: "enter", HelpKey: "ui.help.choose",
		Handler: handleEnter, Screens: []screen{screenPresets, screenCycles, screenSession}, Priority: 10})

	r.Register(KeyBinding{Keys: []string{" "}, Label: "space", HelpKey: "ui.help.pause",
		Handler: handlePauseResume, Screens: []screen{screenSession}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"r"}, Label: "r", HelpKey: "ui.help.reset",
		Handler: handleReset, Screens: []screen{screenSession}, Priority: 10})

	r.Register(KeyBinding{Keys: []string{"e"}, Label: "e", HelpKey: "ui.help.export",
		Handler: handleExport, Screens: []screen{screenHistory}, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"x"}, Label: "x", HelpKey: "ui.help.clear", Handler: handleClearHistory, Screens: []screen{screenHistory}, Priority: 10})

	r.Register(KeyBinding{Keys: []string{"esc", "b"}, Label: "b", HelpKey: "ui.help.back",
		Handler: handleBack, Screens: []screen{screenCycles, screenSession, screenHistory}, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"h"}, Label: "h", HelpKey: "ui.help.history",
		Handler: handleOpenHistory, Screens: []screen{screenPresets, screenCycles}, Priority: 5})

	r.Register(KeyBinding{Keys: []string{"t"}, Label: "t", HelpKey: "ui.help.theme", Handler: handleCycleTheme})
	r.Register(KeyBinding{Keys: []string{"L"}, Label: "L", HelpKey: "ui.help.locale", Handler: handleToggleLocale})
	r.Register(KeyBinding{Keys: []string{"m"}, Label: "m", HelpKey: "ui.help.mute", Handler: handleToggleMute})
	r.Register(KeyBinding{Keys: []string{"c"}, Label: "c", HelpKey: "ui.help.tickCue", Handler: handleToggleTickCue})
	r.Register(KeyBinding{Keys: []string{"q"}, Label: "q", HelpKey: "ui.help.quit", Handler: handleQuit})

	return r
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key != "x" {
		m.confirmClear = false
	}
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	if m.screen == screenCycles {
		if msg.Type == tea.KeyRunes && !isDigits(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func isDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}
