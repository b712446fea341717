package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding maps one or more keys to a handler. HelpKey is a translation
// key; bindings without one are hidden from the footer.
type KeyBinding struct {
	Keys     []string
	Label    string
	HelpKey  string
	Handler  KeyHandler
	Screens  []screen
	Priority int
}

func (b KeyBinding) AppliesTo(s screen) bool {
	if len(b.Screens) == 0 {
		return true
	}
	for _, v := range b.Screens {
		if v == s {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesTo(m.screen) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(s screen) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer help line for a screen, most specific
// bindings first.
func (r *HandlerRegistry) HelpFor(s screen, locale models.Locale) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(s) {
		if b.HelpKey == "" || seen[b.Label] {
			continue
		}
		seen[b.Label] = true
		parts = append(parts, "["+b.Label+"]"+i18n.Translate(locale, b.HelpKey))
	}
	return strings.Join(parts, " ")
}
