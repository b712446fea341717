// Package prefs keeps the user's display and sound preferences in memory
// and writes every change through to a key-value store.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
)

var (
	ErrInvalidLocale = errors.New("invalid locale")
	ErrInvalidTheme  = errors.New("invalid theme")
)

// KV is the persistence collaborator. *database.Database satisfies it.
type KV interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Snapshot is the full preference set handed to subscribers.
type Snapshot struct {
	Locale  models.Locale
	Theme   models.Theme
	Muted   bool
	TickCue bool
}

// Store is safe for concurrent use.
type Store struct {
	kv KV

	mu     sync.RWMutex
	state  Snapshot
	subs   map[int]func(Snapshot)
	nextID int
}

func defaults() Snapshot {
	return Snapshot{Locale: models.LocaleJA, Theme: models.ThemeSystem}
}

// New returns a store holding defaults. Call Init to load persisted values.
func New(kv KV) *Store {
	return &Store{
		kv:    kv,
		state: defaults(),
		subs:  make(map[int]func(Snapshot)),
	}
}

// Init reads the persisted preferences once. langTag is the environment's
// language tag, used when no locale has been stored.
func (s *Store) Init(ctx context.Context, langTag string) {
	stored, _ := s.kv.GetSetting(ctx, config.LocaleKey)
	next := defaults()
	next.Locale = i18n.DetectLocale(stored, langTag)

	if v, ok := s.kv.GetSetting(ctx, config.ThemeKey); ok && ValidTheme(models.Theme(v)) {
		next.Theme = models.Theme(v)
	}
	if v, ok := s.kv.GetSetting(ctx, config.MutedKey); ok {
		next.Muted, _ = strconv.ParseBool(v)
	}
	if v, ok := s.kv.GetSetting(ctx, config.TickCueKey); ok {
		next.TickCue, _ = strconv.ParseBool(v)
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Locale() models.Locale { return s.Snapshot().Locale }
func (s *Store) Theme() models.Theme   { return s.Snapshot().Theme }
func (s *Store) Muted() bool           { return s.Snapshot().Muted }
func (s *Store) TickCue() bool         { return s.Snapshot().TickCue }

// SetLocale persists and applies locale.
func (s *Store) SetLocale(ctx context.Context, locale models.Locale) error {
	if !i18n.Valid(locale) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return s.update(ctx, config.LocaleKey, string(locale), func(p *Snapshot) { p.Locale = locale })
}

// SetTheme persists and applies theme.
func (s *Store) SetTheme(ctx context.Context, theme models.Theme) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	return s.update(ctx, config.ThemeKey, string(theme), func(p *Snapshot) { p.Theme = theme })
}

func (s *Store) SetMuted(ctx context.Context, muted bool) error {
	return s.update(ctx, config.MutedKey, strconv.FormatBool(muted), func(p *Snapshot) { p.Muted = muted })
}

func (s *Store) SetTickCue(ctx context.Context, on bool) error {
	return s.update(ctx, config.TickCueKey, strconv.FormatBool(on), func(p *Snapshot) { p.TickCue = on })
}

// The in-memory value only changes once the write succeeded.
func (s *Store) update(ctx context.Context, key, value string, apply func(*Snapshot)) error {
	if err := s.kv.SetSetting(ctx, key, value); err != nil {
		return fmt.Errorf("save preference %s: %w", key, err)
	}

	s.mu.Lock()
	apply(&s.state)
	snap := s.state
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
	return nil
}

// Subscribe registers fn to run after every successful change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// ValidTheme reports whether theme is one of the known values.
func ValidTheme(theme models.Theme) bool {
	switch theme {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
		return true
	}
	return false
}

// NextTheme cycles system -> light -> dark -> system.
func NextTheme(theme models.Theme) models.Theme {
	switch theme {
	case models.ThemeSystem:
		return models.ThemeLight
	case models.ThemeLight:
		return models.ThemeDark
	default:
		return models.ThemeSystem
	}
}

// EffectiveTheme resolves the system theme against the terminal background.
func EffectiveTheme(theme models.Theme, darkBackground bool) models.Theme {
	if theme == models.ThemeLight || theme == models.ThemeDark {
		return theme
	}
	if darkBackground {
		return models.ThemeDark
	}
	return models.ThemeLight
}
