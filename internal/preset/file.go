package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/util"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# Custom breathing presets. Phase lengths are in seconds; hold may be 0.
# Changes are picked up while the app is running.
#
# presets:
#   - id: box
#     name: Box breathing
#     description: Even square rhythm
#     inhale: 4
#     hold: 4
#     exhale: 4
`

type yamlFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

type yamlPreset struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Inhale      int    `yaml:"inhale"`
	Hold        int    `yaml:"hold"`
	Exhale      int    `yaml:"exhale"`
}

// LoadFile reads user presets from a YAML file.
// A missing file yields no presets and no error.
func LoadFile(path string) ([]models.Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a presets document.
func Parse(raw []byte) ([]models.Preset, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse presets yaml: %w", err)
	}

	out := make([]models.Preset, 0, len(doc.Presets))
	for _, entry := range doc.Presets {
		p := models.Preset{
			ID:            entry.ID,
			InhaleSeconds: entry.Inhale,
			HoldSeconds:   entry.Hold,
			ExhaleSeconds: entry.Exhale,
			Category:      models.CategoryCustom,
			Name:          entry.Name,
			Description:   entry.Description,
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		if err := Validate(p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SaveFile writes presets to path in the format LoadFile reads.
func SaveFile(path string, presets []models.Preset) error {
	doc := yamlFile{Presets: make([]yamlPreset, 0, len(presets))}
	for _, p := range presets {
		doc.Presets = append(doc.Presets, yamlPreset{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Inhale:      p.InhaleSeconds,
			Hold:        p.HoldSeconds,
			Exhale:      p.ExhaleSeconds,
		})
	}
	serialized, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal presets yaml: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), serialized...), 0o644); err != nil {
		return fmt.Errorf("write presets file: %w", err)
	}
	return nil
}

// EnsureFile writes an empty, commented presets file when none exists and
// reports whether it did.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat presets file: %w", err)
	}
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("create presets dir: %w", err)
	}
	if err := SaveFile(path, nil); err != nil {
		return false, err
	}
	return true, nil
}
