package database

import (
	"context"

	"github.com/akyairhashvil/breathpace/internal/models"
)

// SettingsRepository defines key-value preference storage.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// SessionRepository defines practice history operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.Session) error
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SessionStats(ctx context.Context) ([]models.PresetStats, error)
	ClearHistory(ctx context.Context) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	SessionRepository
}

var _ Repository = (*Database)(nil)
