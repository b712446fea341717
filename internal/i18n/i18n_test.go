package i18n

import (
	"testing"

	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/preset"
)

func TestTranslate(t *testing.T) {
	t.Setenv("BREATH_ENV", "production")
	tests := []struct {
		locale models.Locale
		key    string
		want   string
	}{
		{models.LocaleJA, "ui.phase.inhale", "吸う"},
		{models.LocaleEN, "ui.phase.inhale", "Inhale"},
		{models.LocaleEN, "ui.theme.system", "Follow system"},
		{models.LocaleJA, "preset.daily.name", "日常調整"},
		{models.LocaleEN, "preset.neiyang_deep.name", "Neiyang Gong - Deep"},
		{models.LocaleEN, "ui.presetFormatHelp", "Format: Inhale-Hold-Exhale (seconds)"},
		{models.LocaleEN, "ui.of", "/"},
		{models.LocaleEN, "ui.missing.key", "ui.missing.key"},
		{models.LocaleJA, "ui.phase", "ui.phase"},
		{models.Locale("fr"), "ui.phase.exhale", "吐く"},
	}
	for _, tt := range tests {
		if got := Translate(tt.locale, tt.key); got != tt.want {
			t.Fatalf("Translate(%s, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	if Keys(models.LocaleJA) != Keys(models.LocaleEN) {
		t.Fatalf("ja has %d keys, en has %d", Keys(models.LocaleJA), Keys(models.LocaleEN))
	}
	loadOnce.Do(load)
	for key := range tables[models.LocaleJA] {
		if !Has(models.LocaleEN, key) {
			t.Fatalf("en table missing %q", key)
		}
	}
}

func TestBuiltinPresetsTranslated(t *testing.T) {
	for _, p := range preset.Default().List() {
		for _, key := range []string{p.NameKey, p.DescriptionKey, p.NoteKey} {
			for _, locale := range Locales {
				if !Has(locale, key) {
					t.Fatalf("%s table missing %q", locale, key)
				}
			}
		}
	}
}

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		stored string
		lang   string
		want   models.Locale
	}{
		{"", "", models.LocaleJA},
		{"", "en_US.UTF-8", models.LocaleEN},
		{"", "EN-gb", models.LocaleEN},
		{"", "ja_JP.UTF-8", models.LocaleJA},
		{"", "de_DE", models.LocaleJA},
		{"en", "ja_JP", models.LocaleEN},
		{"ja", "en_US", models.LocaleJA},
		{"xx", "en_US", models.LocaleEN},
	}
	for _, tt := range tests {
		if got := DetectLocale(tt.stored, tt.lang); got != tt.want {
			t.Fatalf("DetectLocale(%q, %q) = %s, want %s", tt.stored, tt.lang, got, tt.want)
		}
	}
}

func TestEnvLanguageTag(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	if got := EnvLanguageTag(); got != "en_US.UTF-8" {
		t.Fatalf("EnvLanguageTag() = %q", got)
	}
	t.Setenv("LC_MESSAGES", "ja_JP.UTF-8")
	if got := EnvLanguageTag(); got != "ja_JP.UTF-8" {
		t.Fatalf("EnvLanguageTag() = %q, want LC_MESSAGES", got)
	}
	t.Setenv("LC_ALL", "C")
	if got := EnvLanguageTag(); got != "C" {
		t.Fatalf("EnvLanguageTag() = %q, want LC_ALL", got)
	}
}

func TestPresetText(t *testing.T) {
	builtin, _ := preset.Default().Lookup("night")
	if got := PresetName(models.LocaleEN, builtin); got != "Evening Adjustment" {
		t.Fatalf("PresetName(builtin) = %q", got)
	}
	custom := &models.Preset{ID: "mine", Name: "Mine", Description: "own words"}
	if got := PresetName(models.LocaleJA, custom); got != "Mine" {
		t.Fatalf("PresetName(custom) = %q", got)
	}
	if got := PresetDescription(models.LocaleEN, custom); got != "own words" {
		t.Fatalf("PresetDescription(custom) = %q", got)
	}
	if got := PresetNote(models.LocaleEN, custom); got != "" {
		t.Fatalf("PresetNote(custom) = %q", got)
	}
	noNote := &models.Preset{ID: "quiet", NameKey: "preset.night.name", NoteKey: "preset.quiet.note"}
	if got := PresetNote(models.LocaleEN, noNote); got != "" {
		t.Fatalf("PresetNote(missing note) = %q, want empty", got)
	}
	if got := PresetNote(models.LocaleEN, builtin); got == "" || got == builtin.NoteKey {
		t.Fatalf("PresetNote(builtin) = %q", got)
	}
}
