// Package i18n holds the Japanese and English message tables and resolves
// which locale to display.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	loadOnce sync.Once
	tables   map[models.Locale]map[string]string
)

// Locales lists the supported locales in display order.
var Locales = []models.Locale{models.LocaleJA, models.LocaleEN}

// Valid reports whether locale is supported.
func Valid(locale models.Locale) bool {
	return locale == models.LocaleJA || locale == models.LocaleEN
}

func load() {
	tables = make(map[models.Locale]map[string]string, len(Locales))
	for _, locale := range Locales {
		raw, err := localeFS.ReadFile("locales/" + string(locale) + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("i18n: read %s table: %v", locale, err))
		}
		table, err := parseTable(raw)
		if err != nil {
			panic(fmt.Sprintf("i18n: parse %s table: %v", locale, err))
		}
		tables[locale] = table
	}
}

func parseTable(raw []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Translate looks up a dotted key such as "ui.phase.inhale". Unknown keys
// are returned unchanged. An unsupported locale falls back to Japanese.
func Translate(locale models.Locale, key string) string {
	loadOnce.Do(load)
	table, ok := tables[locale]
	if !ok {
		table = tables[models.LocaleJA]
	}
	if value, ok := table[key]; ok {
		return value
	}
	if os.Getenv(config.EnvMode) != config.EnvProduction {
		log.Printf("i18n: missing translation %q for locale %s", key, locale)
	}
	return key
}

// Has reports whether key exists in the locale's table.
func Has(locale models.Locale, key string) bool {
	loadOnce.Do(load)
	_, ok := tables[locale][key]
	return ok
}

// Keys returns the number of entries in the locale's table.
func Keys(locale models.Locale) int {
	loadOnce.Do(load)
	return len(tables[locale])
}

// DetectLocale picks the display locale. A valid stored choice wins.
// Otherwise an English language tag selects English and anything else
// selects Japanese.
func DetectLocale(stored string, langTag string) models.Locale {
	if l := models.Locale(stored); Valid(l) {
		return l
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(langTag)), "en") {
		return models.LocaleEN
	}
	return models.LocaleJA
}

// EnvLanguageTag returns the first non-empty value of LC_ALL, LC_MESSAGES
// and LANG.
func EnvLanguageTag() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// PresetName returns the display name of p. Presets without a message key
// carry their own name.
func PresetName(locale models.Locale, p *models.Preset) string {
	if p.NameKey == "" {
		return p.Name
	}
	return Translate(locale, p.NameKey)
}

// PresetDescription returns the description of p in locale.
func PresetDescription(locale models.Locale, p *models.Preset) string {
	if p.DescriptionKey == "" {
		return p.Description
	}
	return Translate(locale, p.DescriptionKey)
}

// PresetNote returns the practice note for p, or "" for custom presets and
// presets without a note in locale.
func PresetNote(locale models.Locale, p *models.Preset) string {
	if p.NoteKey == "" || !Has(locale, p.NoteKey) {
		return ""
	}
	return Translate(locale, p.NoteKey)
}
