package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/google/uuid"
)

const sessionColumns = "id, preset_id, planned_cycles, completed_cycles, status, started_at, ended_at, active_seconds"

// RecordSession stores a finished or abandoned session. An empty ID is
// replaced with a generated one.
func (d *Database) RecordSession(ctx context.Context, s models.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := validateSession(s); err != nil {
		return wrapErr(EntitySession, "record", s.ID, err)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO sessions ("+sessionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			s.ID, s.PresetID, s.PlannedCycles, s.CompletedCycles, string(s.Status),
			s.StartedAt.UTC(), nullableTime(s.EndedAt), s.ActiveSeconds)
		return wrapErr(EntitySession, "record", s.ID, err)
	})
}

func validateSession(s models.Session) error {
	switch {
	case s.PresetID == "":
		return fmt.Errorf("%w: missing preset", ErrInvalidSession)
	case s.Status != models.SessionCompleted && s.Status != models.SessionAbandoned:
		return fmt.Errorf("%w: status %q", ErrInvalidSession, s.Status)
	case s.PlannedCycles < 1:
		return fmt.Errorf("%w: planned cycles %d", ErrInvalidSession, s.PlannedCycles)
	case s.CompletedCycles < 0 || s.ActiveSeconds < 0:
		return fmt.Errorf("%w: negative progress", ErrInvalidSession)
	case s.StartedAt.IsZero():
		return fmt.Errorf("%w: missing start time", ErrInvalidSession)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	var status string
	var ended sql.NullTime
	if err := row.Scan(&s.ID, &s.PresetID, &s.PlannedCycles, &s.CompletedCycles, &status, &s.StartedAt, &ended, &s.ActiveSeconds); err != nil {
		return s, err
	}
	s.Status = models.SessionStatus(status)
	s.StartedAt = s.StartedAt.UTC()
	if ended.Valid {
		s.EndedAt = ended.Time.UTC()
	}
	return s, nil
}

// ListSessions returns up to limit sessions, newest first. A limit of zero
// or less returns all of them.
func (d *Database) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	if limit <= 0 {
		limit = -1
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Session, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT "+sessionColumns+" FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT ?", limit)
		if err != nil {
			return nil, wrapErr(EntitySession, "list", "", err)
		}
		defer rows.Close()

		var sessions []models.Session
		for rows.Next() {
			s, err := scanSession(rows)
			if err != nil {
				return nil, wrapErr(EntitySession, "list", "", err)
			}
			sessions = append(sessions, s)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntitySession, "list", "", err)
		}
		return sessions, nil
	})
}

// SessionStats aggregates history per preset, most recently practiced first.
func (d *Database) SessionStats(ctx context.Context) ([]models.PresetStats, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.PresetStats, error) {
		rows, err := d.DB.QueryContext(ctx, `
			SELECT preset_id,
			       COUNT(*),
			       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			       COALESCE(SUM(active_seconds), 0),
			       MAX(started_at)
			FROM sessions
			GROUP BY preset_id
			ORDER BY MAX(started_at) DESC`, string(models.SessionCompleted))
		if err != nil {
			return nil, wrapErr(EntitySession, "stats", "", err)
		}
		defer rows.Close()

		var stats []models.PresetStats
		for rows.Next() {
			var st models.PresetStats
			var last string
			if err := rows.Scan(&st.PresetID, &st.Sessions, &st.Completed, &st.ActiveSeconds, &last); err != nil {
				return nil, wrapErr(EntitySession, "stats", "", err)
			}
			if st.LastPracticed, err = parseTimestamp(last); err != nil {
				return nil, wrapErr(EntitySession, "stats", st.PresetID, err)
			}
			stats = append(stats, st)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntitySession, "stats", "", err)
		}
		return stats, nil
	})
}

// ClearHistory deletes every recorded session. Settings are kept.
func (d *Database) ClearHistory(ctx context.Context) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM sessions")
		return wrapErr(EntitySession, "clear", "", err)
	})
}
