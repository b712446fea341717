package testutil

import (
	"time"

	"github.com/akyairhashvil/breathpace/internal/models"
)

// PresetBuilder provides fluent API for creating test presets.
type PresetBuilder struct {
	preset models.Preset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.Preset{
			ID:            "test_preset",
			InhaleSeconds: 4,
			HoldSeconds:   4,
			ExhaleSeconds: 4,
			Category:      models.CategoryCustom,
			Name:          "Test Preset",
		},
	}
}

func (b *PresetBuilder) WithID(id string) *PresetBuilder {
	b.preset.ID = id
	return b
}

func (b *PresetBuilder) WithPhases(inhale, hold, exhale int) *PresetBuilder {
	b.preset.InhaleSeconds = inhale
	b.preset.HoldSeconds = hold
	b.preset.ExhaleSeconds = exhale
	return b
}

func (b *PresetBuilder) WithCategory(c models.Category) *PresetBuilder {
	b.preset.Category = c
	return b
}

func (b *PresetBuilder) WithName(name string) *PresetBuilder {
	b.preset.Name = name
	return b
}

func (b *PresetBuilder) Build() models.Preset {
	return b.preset
}

// Ptr returns a pointer to a copy of the built preset.
func (b *PresetBuilder) Ptr() *models.Preset {
	p := b.preset
	return &p
}

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	started := time.Date(2026, 1, 2, 7, 30, 0, 0, time.UTC)
	return &SessionBuilder{
		session: models.Session{
			ID:              "00000000-0000-0000-0000-000000000001",
			PresetID:        "daily",
			PlannedCycles:   10,
			CompletedCycles: 10,
			Status:          models.SessionCompleted,
			StartedAt:       started,
			EndedAt:         started.Add(100 * time.Second),
			ActiveSeconds:   100,
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

func (b *SessionBuilder) WithPreset(id string) *SessionBuilder {
	b.session.PresetID = id
	return b
}

func (b *SessionBuilder) WithCycles(planned, completed int) *SessionBuilder {
	b.session.PlannedCycles = planned
	b.session.CompletedCycles = completed
	return b
}

func (b *SessionBuilder) WithStatus(s models.SessionStatus) *SessionBuilder {
	b.session.Status = s
	return b
}

func (b *SessionBuilder) StartedAt(at time.Time) *SessionBuilder {
	d := b.session.EndedAt.Sub(b.session.StartedAt)
	b.session.StartedAt = at
	b.session.EndedAt = at.Add(d)
	return b
}

func (b *SessionBuilder) WithActiveSeconds(s int) *SessionBuilder {
	b.session.ActiveSeconds = s
	b.session.EndedAt = b.session.StartedAt.Add(time.Duration(s) * time.Second)
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
