// Package preset holds the catalog of breathing techniques: the built-in
// set plus any user presets loaded from a YAML file.
package preset

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/breathpace/internal/models"
)

var (
	ErrInvalidPreset   = errors.New("invalid preset")
	ErrDuplicatePreset = errors.New("duplicate preset id")
)

// Catalog is an ordered, read-only set of presets. Order is display order.
type Catalog struct {
	presets []*models.Preset
	byID    map[string]*models.Preset
}

func builtin(id string, inhale, hold, exhale int, category models.Category) *models.Preset {
	return &models.Preset{
		ID:             id,
		InhaleSeconds:  inhale,
		HoldSeconds:    hold,
		ExhaleSeconds:  exhale,
		Category:       category,
		NameKey:        "preset." + id + ".name",
		DescriptionKey: "preset." + id + ".description",
		NoteKey:        "preset." + id + ".note",
	}
}

func builtins() []*models.Preset {
	return []*models.Preset{
		builtin("neiyang_basic", 4, 4, 4, models.CategoryNeiyang),
		builtin("neiyang_deep", 7, 7, 7, models.CategoryNeiyang),
		builtin("daily", 4, 0, 6, models.CategoryDaily),
		builtin("night", 4, 0, 8, models.CategoryDaily),
		builtin("neutral", 5, 0, 5, models.CategoryDaily),
		builtin("morning", 6, 0, 4, models.CategoryDaily),
		builtin("release", 3, 0, 6, models.CategoryDaily),
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return newCatalog(builtins())
}

func newCatalog(presets []*models.Preset) *Catalog {
	c := &Catalog{
		presets: presets,
		byID:    make(map[string]*models.Preset, len(presets)),
	}
	for _, p := range presets {
		c.byID[p.ID] = p
	}
	return c
}

// Lookup finds a preset by id.
func (c *Catalog) Lookup(id string) (*models.Preset, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns the presets in display order.
func (c *Catalog) List() []*models.Preset {
	out := make([]*models.Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Len is the number of presets in the catalog.
func (c *Catalog) Len() int {
	return len(c.presets)
}

// WithCustom returns a catalog of the built-ins followed by custom. Custom
// entries are validated, must not reuse an id, and are tagged as custom.
func (c *Catalog) WithCustom(custom []models.Preset) (*Catalog, error) {
	base := builtins()
	seen := make(map[string]bool, len(base)+len(custom))
	for _, p := range base {
		seen[p.ID] = true
	}
	merged := base
	for i := range custom {
		p := custom[i]
		if err := Validate(p); err != nil {
			return c, err
		}
		if seen[p.ID] {
			return c, fmt.Errorf("%w: %q", ErrDuplicatePreset, p.ID)
		}
		seen[p.ID] = true
		p.Category = models.CategoryCustom
		merged = append(merged, &p)
	}
	return newCatalog(merged), nil
}

// Validate checks the shape of a preset.
func Validate(p models.Preset) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidPreset)
	case p.InhaleSeconds <= 0:
		return fmt.Errorf("%w %q: inhale must be positive", ErrInvalidPreset, p.ID)
	case p.HoldSeconds < 0:
		return fmt.Errorf("%w %q: hold must not be negative", ErrInvalidPreset, p.ID)
	case p.ExhaleSeconds <= 0:
		return fmt.Errorf("%w %q: exhale must be positive", ErrInvalidPreset, p.ID)
	}
	return nil
}

// Pattern formats the phase lengths as inhale-hold-exhale, e.g. "4-0-6".
func Pattern(p models.Preset) string {
	return fmt.Sprintf("%d-%d-%d", p.InhaleSeconds, p.HoldSeconds, p.ExhaleSeconds)
}
