// Package tui is the full-screen terminal interface: preset selection,
// session length, the paced countdown itself, and practice history.
package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/breathpace/internal/audio"
	"github.com/akyairhashvil/breathpace/internal/breath"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/prefs"
	"github.com/akyairhashvil/breathpace/internal/preset"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenPresets screen = iota
	screenCycles
	screenSession
	screenHistory
)

// durationMode selects how the session length is entered.
type durationMode int

const (
	modeCycles durationMode = iota
	modeMinutes
)

// Options carries the collaborators of the UI.
type Options struct {
	Store      HistoryStore
	Prefs      *prefs.Store
	Notifier   *audio.Notifier
	Catalog    *preset.Catalog
	ReportsDir string

	// Now and DarkBackground default to time.Now and
	// lipgloss.HasDarkBackground.
	Now            func() time.Time
	DarkBackground func() bool
}

// practice is the session in progress. It is shared by every copy of the
// model so the timer and its clock have a single owner.
type practice struct {
	timer     *breath.Timer
	clock     *teaClock
	startedAt time.Time
	active    int
	planned   int
	recorded  bool
}

func (p *practice) begin(now time.Time, cycles int) {
	p.startedAt = now
	p.active = 0
	p.planned = cycles
	p.recorded = false
}

// inProgress reports whether stopping now abandons a session.
func (p *practice) inProgress() bool {
	s := p.timer.Context().State
	return !p.recorded && (s == models.TimerRunning || s == models.TimerPaused)
}

type historyView struct {
	stats    []models.PresetStats
	sessions []models.Session
	err      error
}

type Model struct {
	ctx        context.Context
	store      HistoryStore
	prefs      *prefs.Store
	notifier   *audio.Notifier
	catalog    *preset.Catalog
	keys       *HandlerRegistry
	now        func() time.Time
	darkBG     bool
	reportsDir string

	screen       screen
	cursor       int
	selected     *models.Preset
	mode         durationMode
	input        textinput.Model
	progress     progress.Model
	practice     *practice
	history      historyView
	confirmClear bool
	tickHinted   bool

	width         int
	height        int
	statusMessage string
	statusIsError bool
}

func NewModel(ctx context.Context, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DarkBackground == nil {
		opts.DarkBackground = lipgloss.HasDarkBackground
	}
	if opts.Catalog == nil {
		opts.Catalog = preset.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = audio.NewNotifier(nil)
	}

	clock := &teaClock{}
	timer := breath.NewTimer(clock)
	notifier := opts.Notifier
	timer.OnPhaseChange(notifier.PhaseChange)
	timer.OnTick(notifier.Tick)

	snap := opts.Prefs.Snapshot()
	notifier.SetMuted(snap.Muted)
	notifier.SetTickCue(snap.TickCue)
	opts.Prefs.Subscribe(func(s prefs.Snapshot) {
		notifier.SetMuted(s.Muted)
		notifier.SetTickCue(s.TickCue)
	})

	ti := textinput.New()
	ti.CharLimit = 3
	ti.Width = 6

	bar := progress.New(progress.WithoutPercentage())
	bar.Width = config.ProgressWidth

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		prefs:      opts.Prefs,
		notifier:   notifier,
		catalog:    opts.Catalog,
		now:        opts.Now,
		darkBG:     opts.DarkBackground(),
		reportsDir: opts.ReportsDir,
		screen:     screenPresets,
		input:      ti,
		progress:   bar,
		practice:   &practice{timer: timer, clock: clock},
	}
	m.keys = defaultKeys()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case PresetsReloadedMsg:
		return m.handlePresetsReloaded(msg)
	case reportExportedMsg:
		return m.handleReportExported(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) locale() models.Locale {
	return m.prefs.Locale()
}

func (m Model) theme() Theme {
	return themeFor(prefs.EffectiveTheme(m.prefs.Theme(), m.darkBG))
}

// Timer exposes the current timer snapshot.
func (m Model) Timer() models.TimerContext {
	return m.practice.timer.Context()
}
