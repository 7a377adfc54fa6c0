package generator

import (
	"sort"
	"strings"

	"blocks-generator/core/world"

	"go.uber.org/zap"
)

// Registry maps generator type names to their material palettes.
// It is built once and never mutated afterwards.
type Registry struct {
	types map[string][]world.Material
}

// NewRegistry resolves the configured palettes against the material catalog.
// Unknown, non-block and air materials are skipped; a type left with no materials is
// omitted entirely.
func NewRegistry(types map[string]TypeConfig, catalog *world.Catalog, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{types: make(map[string][]world.Material, len(types))}
	for name, tc := range types {
		key := strings.ToLower(strings.TrimSpace(name))
		materials := make([]world.Material, 0, len(tc.Blocks))
		for _, blockName := range tc.Blocks {
			m, ok := catalog.Parse(blockName)
			if !ok || m.IsAir() || !catalog.IsBlock(m) {
				logger.Warn("Skipping palette entry",
					zap.String("type", key),
					zap.String("material", blockName),
				)
				continue
			}
			materials = append(materials, m)
		}
		if len(materials) == 0 {
			logger.Warn("Generator type has no valid materials", zap.String("type", key))
			continue
		}
		r.types[key] = materials
	}
	return r
}

// Resolve returns the palette of a generator type. Lookup is case-insensitive.
// The returned slice must not be modified.
func (r *Registry) Resolve(name string) ([]world.Material, bool) {
	palette, ok := r.types[strings.ToLower(name)]
	return palette, ok
}

// Has reports whether the generator type exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// Names returns all type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of generator types.
func (r *Registry) Len() int {
	return len(r.types)
}
