package tui

import (
	"context"

	"github.com/akyairhashvil/breathpace/internal/models"
)

// HistoryStore is the practice history the UI reads and writes.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type HistoryStore interface {
	RecordSession(ctx context.Context, s models.Session) error
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SessionStats(ctx context.Context) ([]models.PresetStats, error)
	ClearHistory(ctx context.Context) error
}
