package tui

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/breathpace/internal/audio"
	"github.com/akyairhashvil/breathpace/internal/database"
	"github.com/akyairhashvil/breathpace/internal/prefs"
	tea "github.com/charmbracelet/bubbletea"
)

var testNow = time.Date(2026, 5, 6, 7, 0, 0, 0, time.UTC)

func setupModelDB(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "model.db")
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type testEnv struct {
	db    *database.Database
	prefs *prefs.Store
	bell  *bytes.Buffer
}

// setupTestModel builds an English, dark-background model. A nil store
// uses the sqlite database for history too.
func setupTestModel(t *testing.T, store HistoryStore) (Model, *testEnv) {
	t.Helper()
	ctx := context.Background()
	db := setupModelDB(t)
	p := prefs.New(db)
	p.Init(ctx, "en_US.UTF-8")

	env := &testEnv{db: db, prefs: p, bell: &bytes.Buffer{}}
	if store == nil {
		store = db
	}
	m := NewModel(ctx, Options{
		Store:          store,
		Prefs:          p,
		Notifier:       audio.NewNotifier(env.bell),
		ReportsDir:     t.TempDir(),
		Now:            func() time.Time { return testNow },
		DarkBackground: func() bool { return true },
	})
	return m, env
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

// tick delivers n ticks from the current arming.
func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{Gen: m.practice.clock.gen})
		m = next.(Model)
	}
	return m
}

// startSession selects the preset at index and starts it with cycles.
func startSession(t *testing.T, m Model, index int, cycles string) Model {
	t.Helper()
	for i := 0; i < index; i++ {
		m, _ = press(t, m, "down")
	}
	m, _ = press(t, m, "enter")
	m.input.SetValue(cycles)
	m, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatalf("expected a tick command after starting")
	}
	return m
}
