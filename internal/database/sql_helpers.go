package database

import (
	"database/sql"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// nullableTime converts a time to sql.NullTime. The zero time is NULL.
func nullableTime(v time.Time) sql.NullTime {
	return sql.NullTime{Time: v.UTC(), Valid: !v.IsZero()}
}

// parseTimestamp reads a timestamp that sqlite returned as text, as it does
// for aggregates over DATETIME columns.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
