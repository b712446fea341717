package tui

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/golang/mock/gomock"
)

func TestNewModelStartsOnPresets(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	if m.screen != screenPresets {
		t.Fatalf("expected preset screen, got %v", m.screen)
	}
	if m.Timer().State != models.TimerIdle {
		t.Fatalf("expected idle timer")
	}
	view := m.View()
	for _, want := range []string{"Select Preset", "Neiyang Gong - Basic", "4-4-4", "Format: Inhale-Hold-Exhale (seconds)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestPresetNavigationWraps(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m, _ = press(t, m, "up")
	if m.cursor != m.catalog.Len()-1 {
		t.Fatalf("expected wrap to last preset, got %d", m.cursor)
	}
	m, _ = press(t, m, "j")
	if m.cursor != 0 {
		t.Fatalf("expected wrap to first preset, got %d", m.cursor)
	}
}

func TestCycleSelection(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m, _ = press(t, m, "enter")
	if m.screen != screenCycles || m.selected == nil || m.selected.ID != "neiyang_basic" {
		t.Fatalf("expected cycle screen for neiyang_basic")
	}
	if m.input.Value() != "50" {
		t.Fatalf("expected recommended 50 cycles, got %q", m.input.Value())
	}
	if !strings.Contains(m.View(), "★") {
		t.Fatalf("expected recommended marker")
	}

	m, _ = press(t, m, "up")
	if m.input.Value() != "51" {
		t.Fatalf("expected 51 after up, got %q", m.input.Value())
	}
	m, _ = press(t, m, "tab")
	if m.mode != modeMinutes || m.input.Value() != "10" {
		t.Fatalf("expected 10 minutes, got mode %v value %q", m.mode, m.input.Value())
	}
	if !strings.Contains(m.View(), "About 10 min") {
		t.Fatalf("expected duration estimate in view")
	}
	m, _ = press(t, m, "tab")
	if m.mode != modeCycles || m.input.Value() != "50" {
		t.Fatalf("expected 50 cycles after switching back, got %q", m.input.Value())
	}
}

func TestCycleInputAcceptsDigitsOnly(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m, _ = press(t, m, "enter", "backspace", "backspace", "7", "z")
	if m.input.Value() != "7" {
		t.Fatalf("expected input 7, got %q", m.input.Value())
	}
	if m.plannedCycles() != 7 {
		t.Fatalf("expected 7 planned cycles, got %d", m.plannedCycles())
	}
	m.input.SetValue("0")
	if m.plannedCycles() != 1 {
		t.Fatalf("expected clamp to 1, got %d", m.plannedCycles())
	}
}

func TestCompletedSessionIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	var got models.Session
	store.EXPECT().RecordSession(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, s models.Session) { got = s }).
		Return(nil).Times(1)

	m, env := setupTestModel(t, store)
	m = startSession(t, m, 0, "2")
	if m.screen != screenSession || m.Timer().State != models.TimerRunning {
		t.Fatalf("expected running session")
	}
	if env.bell.String() != "\a" {
		t.Fatalf("expected a phase bell on start, got %q", env.bell.String())
	}

	m = tick(t, m, 24)
	if m.Timer().State != models.TimerCompleted {
		t.Fatalf("expected completed after 24 ticks, got %s", m.Timer().State)
	}
	if got.Status != models.SessionCompleted || got.PresetID != "neiyang_basic" ||
		got.PlannedCycles != 2 || got.CompletedCycles != 2 || got.ActiveSeconds != 24 {
		t.Fatalf("unexpected recorded session %+v", got)
	}
	if !strings.Contains(m.View(), "The session is complete") {
		t.Fatalf("expected completion message")
	}

	m, _ = press(t, m, "enter")
	if m.screen != screenPresets || m.Timer().State != models.TimerIdle {
		t.Fatalf("expected return to presets")
	}
}

func TestStaleTickAfterResumeIgnored(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m = startSession(t, m, 0, "1")
	old := m.practice.clock.gen

	m, _ = press(t, m, " ")
	if m.Timer().State != models.TimerPaused {
		t.Fatalf("expected paused")
	}
	m, cmd := press(t, m, " ")
	if m.Timer().State != models.TimerRunning || cmd == nil {
		t.Fatalf("expected running with a fresh tick command")
	}

	next, _ := m.Update(TickMsg{Gen: old})
	m = next.(Model)
	if m.Timer().RemainingSeconds != 4 {
		t.Fatalf("stale tick changed the countdown: %d", m.Timer().RemainingSeconds)
	}
	m = tick(t, m, 1)
	if m.Timer().RemainingSeconds != 3 {
		t.Fatalf("expected 3 seconds left, got %d", m.Timer().RemainingSeconds)
	}
}

func TestResetRecordsAbandonedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	var got models.Session
	store.EXPECT().RecordSession(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, s models.Session) { got = s }).
		Return(nil).Times(1)

	m, _ := setupTestModel(t, store)
	m = startSession(t, m, 2, "3")
	m = tick(t, m, 12)
	m, _ = press(t, m, "r")
	if m.Timer().State != models.TimerIdle {
		t.Fatalf("expected idle after reset")
	}
	if got.Status != models.SessionAbandoned || got.PresetID != "daily" || got.CompletedCycles != 1 || got.ActiveSeconds != 12 {
		t.Fatalf("unexpected abandoned session %+v", got)
	}
	m, _ = press(t, m, "r")

	m, cmd := press(t, m, " ")
	if m.Timer().State != models.TimerRunning || m.Timer().MaxCycles != 3 || cmd == nil {
		t.Fatalf("expected space to restart the same plan")
	}
}

func TestBackWithoutActivityRecordsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)

	m, _ := setupTestModel(t, store)
	m = startSession(t, m, 0, "5")
	m, _ = press(t, m, "b")
	if m.screen != screenCycles || m.Timer().State != models.TimerIdle {
		t.Fatalf("expected cycle screen with idle timer")
	}
	m, _ = press(t, m, "esc")
	if m.screen != screenPresets {
		t.Fatalf("expected preset screen")
	}
}

func TestQuitRecordsAbandoned(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	store.EXPECT().RecordSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)

	m, _ := setupTestModel(t, store)
	m = startSession(t, m, 0, "5")
	m = tick(t, m, 2)
	m, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.statusIsError || !strings.Contains(m.statusMessage, "disk full") {
		t.Fatalf("expected record error in status, got %q", m.statusMessage)
	}
}

func TestTickCueHintShownOnce(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	m = startSession(t, m, 0, "2")
	if m.statusMessage != "[c] tick sound" {
		t.Fatalf("expected tick cue hint, got %q", m.statusMessage)
	}
	m, _ = press(t, m, "b", "enter")
	if m.statusMessage != "" {
		t.Fatalf("hint repeated on second start: %q", m.statusMessage)
	}

	m2, env2 := setupTestModel(t, nil)
	if err := env2.prefs.SetTickCue(context.Background(), true); err != nil {
		t.Fatalf("SetTickCue failed: %v", err)
	}
	m2 = startSession(t, m2, 0, "2")
	if m2.statusMessage != "" {
		t.Fatalf("hint shown with tick cue on: %q", m2.statusMessage)
	}
}

func TestPreferenceKeysPersist(t *testing.T) {
	ctx := context.Background()
	m, env := setupTestModel(t, nil)

	m, _ = press(t, m, "t")
	if env.prefs.Theme() != models.ThemeLight {
		t.Fatalf("expected light theme, got %s", env.prefs.Theme())
	}
	if v, _ := env.db.GetSetting(ctx, "breath-pace-theme"); v != "light" {
		t.Fatalf("theme not persisted: %q", v)
	}

	m, _ = press(t, m, "L")
	if env.prefs.Locale() != models.LocaleJA {
		t.Fatalf("expected ja locale")
	}
	if !strings.Contains(m.View(), "プリセットを選択") {
		t.Fatalf("expected Japanese view")
	}

	m, _ = press(t, m, "m")
	if !env.prefs.Muted() {
		t.Fatalf("expected muted")
	}
	m = startSession(t, m, 0, "1")
	if env.bell.Len() != 0 {
		t.Fatalf("muted session rang the bell")
	}
}

func TestHistoryScreenAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	stats := []models.PresetStats{{PresetID: "daily", Sessions: 3, Completed: 2, ActiveSeconds: 300, LastPracticed: testNow}}
	sessions := []models.Session{testutil.NewSession().Build()}

	gomock.InOrder(
		store.EXPECT().SessionStats(gomock.Any()).Return(stats, nil),
		store.EXPECT().ListSessions(gomock.Any(), 50).Return(sessions, nil),
		store.EXPECT().ClearHistory(gomock.Any()).Return(nil),
		store.EXPECT().SessionStats(gomock.Any()).Return(nil, nil),
		store.EXPECT().ListSessions(gomock.Any(), 50).Return(nil, nil),
	)

	m, _ := setupTestModel(t, store)
	m, _ = press(t, m, "h")
	if m.screen != screenHistory {
		t.Fatalf("expected history screen")
	}
	view := m.View()
	for _, want := range []string{"Practice History", "Daily Adjustment", "05:00", "10/10"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected history view to contain %q", want)
		}
	}

	m, _ = press(t, m, "x")
	if !m.confirmClear {
		t.Fatalf("expected confirmation prompt")
	}
	m, _ = press(t, m, "x")
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Fatalf("expected empty history after clear")
	}

	m, _ = press(t, m, "b")
	if m.screen != screenPresets {
		t.Fatalf("expected back to presets")
	}
}

func TestHistoryTableAlignsWideNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	stats := []models.PresetStats{
		{PresetID: "neiyang_basic", Sessions: 2, Completed: 1, ActiveSeconds: 120, LastPracticed: testNow},
		{PresetID: "daily", Sessions: 12, Completed: 12, ActiveSeconds: 3600, LastPracticed: testNow},
		{PresetID: "my_box", Sessions: 1, Completed: 1, ActiveSeconds: 60, LastPracticed: testNow},
	}
	store.EXPECT().SessionStats(gomock.Any()).Return(stats, nil)
	store.EXPECT().ListSessions(gomock.Any(), gomock.Any()).Return(nil, nil)

	m, env := setupTestModel(t, store)
	if err := env.prefs.SetLocale(context.Background(), models.LocaleJA); err != nil {
		t.Fatalf("SetLocale failed: %v", err)
	}
	m, _ = press(t, m, "h")

	loc := m.locale()
	lastLabel := i18n.Translate(loc, "ui.history.last")
	date := testNow.Local().Format("2006-01-02")
	want := historyNameWidth + 1 + 6 + 1 + 6 + 1 + 9 + 2

	rows := 0
	for _, line := range strings.Split(ansi.Strip(m.renderHistory(m.theme(), loc)), "\n") {
		var idx int
		switch {
		case strings.Contains(line, date):
			idx = strings.Index(line, date)
			rows++
		case strings.HasSuffix(line, lastLabel):
			idx = strings.LastIndex(line, lastLabel)
		default:
			continue
		}
		if got := ansi.StringWidth(line[:idx]); got != want {
			t.Fatalf("column starts at cell %d, want %d: %q", got, want, line)
		}
	}
	if rows != len(stats) {
		t.Fatalf("expected %d stats rows, got %d", len(stats), rows)
	}
}

func TestClearNeedsConsecutivePresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockHistoryStore(ctrl)
	store.EXPECT().SessionStats(gomock.Any()).Return(nil, nil)
	store.EXPECT().ListSessions(gomock.Any(), gomock.Any()).Return(nil, nil)

	m, _ := setupTestModel(t, store)
	m, _ = press(t, m, "h", "x", "t", "x")
	if !m.confirmClear {
		t.Fatalf("expected a fresh confirmation after another key")
	}
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	m, env := setupTestModel(t, nil)
	if err := env.db.RecordSession(ctx, testutil.NewSession().Build()); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	m, _ = press(t, m, "h")
	m, cmd := press(t, m, "e")
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	msg := cmd()
	exported, ok := msg.(reportExportedMsg)
	if !ok || exported.err != nil {
		t.Fatalf("export failed: %+v", msg)
	}
	if info, err := os.Stat(exported.path); err != nil || info.Size() == 0 {
		t.Fatalf("expected report at %s", exported.path)
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if !strings.Contains(m.statusMessage, exported.path) {
		t.Fatalf("expected report path in status, got %q", m.statusMessage)
	}
}

func TestPresetsReloaded(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	custom := testutil.NewPreset().WithID("box").WithName("Box").Build()

	next, _ := m.Update(PresetsReloadedMsg{Presets: []models.Preset{custom}})
	m = next.(Model)
	if m.catalog.Len() != 8 {
		t.Fatalf("expected 8 presets, got %d", m.catalog.Len())
	}
	if !strings.Contains(m.View(), "Box (Custom)") {
		t.Fatalf("expected custom preset in list")
	}

	bad := testutil.NewPreset().WithID("daily").Build()
	next, _ = m.Update(PresetsReloadedMsg{Presets: []models.Preset{bad}})
	m = next.(Model)
	if !m.statusIsError || m.catalog.Len() != 8 {
		t.Fatalf("expected rejected reload to keep the catalog")
	}

	next, _ = m.Update(PresetsReloadedMsg{Err: errors.New("yaml: bad")})
	m = next.(Model)
	if !strings.Contains(m.statusMessage, "yaml: bad") {
		t.Fatalf("expected reload error in status")
	}
}

func TestFooterAndWindowSize(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 30})
	m = next.(Model)
	if m.progress.Width != 25 {
		t.Fatalf("expected compact progress width 25, got %d", m.progress.Width)
	}
	footer := m.renderFooter(m.theme(), m.locale())
	if !strings.Contains(footer, "Breath Pace All Rights Reserved") {
		t.Fatalf("expected copyright in footer: %q", footer)
	}
	if !strings.Contains(footer, "[q]quit") {
		t.Fatalf("expected help in footer: %q", footer)
	}
}

func TestCopyrightLineFallsBackToNow(t *testing.T) {
	t.Setenv("BUILD_DATE", "")
	line := copyrightLine(models.LocaleEN, time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(line, "© 2031 Breath Pace") {
		t.Fatalf("unexpected copyright line %q", line)
	}
}
