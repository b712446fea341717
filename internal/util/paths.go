package util

import (
	"os"
	"path/filepath"
	"strings"
)

// xdgHome returns the directory named by env, or home joined with
// fallback. Without a home directory it falls back to the working dir.
func xdgHome(env string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DataDir holds the history database and the debug log.
func DataDir(app string) string {
	return filepath.Join(xdgHome("XDG_DATA_HOME", ".local", "share"), app)
}

// ConfigDir is where user-editable files such as custom presets live.
func ConfigDir(app string) string {
	return filepath.Join(xdgHome("XDG_CONFIG_HOME", ".config"), app)
}

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ReportsDir is the folder exported PDF reports are written to.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir resolves the user's documents folder from the environment,
// then user-dirs.dirs, then ~/Documents.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	data, err := os.ReadFile(filepath.Join(xdgHome("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs"))
	if err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return xdgHome("", "Documents")
}

// parseUserDir reads one KEY="value" entry of a user-dirs.dirs file.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if ok && name == key {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func expandHome(path string) string {
	return os.Expand(path, func(name string) string {
		if name != "HOME" {
			return "$" + name
		}
		home, _ := os.UserHomeDir()
		return home
	})
}
