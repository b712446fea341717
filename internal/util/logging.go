// Package util provides path resolution, logging helpers, and small numeric
// helpers shared by the commands and the UI.
package util

import (
	"io"
	"log"
	"os"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger, which would otherwise draw over
// a full-screen UI.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}

// DebugEnabled reports whether the named environment variable is set to a
// non-empty value.
func DebugEnabled(env string) bool {
	return os.Getenv(env) != ""
}
