// Package buildinfo exposes version metadata injected at link time and the
// build-date stamping used by release builds.
package buildinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akyairhashvil/breathpace/internal/config"
)

// Set with -ldflags "-X github.com/akyairhashvil/breathpace/internal/buildinfo.Version=...".
var (
	Version   = "0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Label renders the version with commit and build time when they are known.
func Label() string {
	label := "v" + Version
	if Commit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", label, Commit, BuildTime)
	}
	return label
}

// BuildYear is the copyright year: the year of BuildTime, else of the
// BUILD_DATE environment variable, else now.
func BuildYear(now time.Time) int {
	if t, ok := parseDate(BuildTime); ok {
		return t.Year()
	}
	if t, ok := parseDate(os.Getenv(config.EnvBuildDate)); ok {
		return t.Year()
	}
	return now.Year()
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "unknown" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StampEnvFile sets BUILD_DATE in the env file at path to now, replacing an
// existing assignment or appending one. Other lines are kept as they are.
// It returns the written value.
func StampEnvFile(path string, now time.Time) (string, error) {
	value := now.UTC().Format(time.RFC3339)
	entry := config.EnvBuildDate + "=" + value

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("read env file: %w", err)
	}

	var lines []string
	if content := strings.TrimRight(string(data), "\n"); content != "" {
		lines = strings.Split(content, "\n")
	}

	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, config.EnvBuildDate+"=") {
			lines[i] = entry
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, entry)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("write env file: %w", err)
	}
	return value, nil
}
