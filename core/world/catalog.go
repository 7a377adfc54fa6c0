package world

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed materials.yaml
var defaultCatalog []byte

// MaterialDef describes a single entry of the material catalog.
type MaterialDef struct {
	Name  string `yaml:"name"`
	Block bool   `yaml:"block"`
}

type catalogFile struct {
	Materials []MaterialDef `yaml:"materials"`
}

// Catalog resolves material names and knows which materials can be placed as blocks.
type Catalog struct {
	defs map[Material]MaterialDef
}

// LoadCatalog parses a YAML material catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("materials.yaml: %w", err)
	}
	c := &Catalog{defs: make(map[Material]MaterialDef, len(f.Materials))}
	for _, def := range f.Materials {
		name := strings.ToUpper(strings.TrimSpace(def.Name))
		if name == "" {
			return nil, fmt.Errorf("materials.yaml: empty material name")
		}
		if _, dup := c.defs[Material(name)]; dup {
			return nil, fmt.Errorf("materials.yaml: duplicate material %s", name)
		}
		def.Name = name
		c.defs[Material(name)] = def
	}
	return c, nil
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse resolves a material name case-insensitively.
func (c *Catalog) Parse(name string) (Material, bool) {
	m := Material(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := c.defs[m]; !ok {
		return "", false
	}
	return m, true
}

// IsBlock reports whether m is known and can be placed in the world.
func (c *Catalog) IsBlock(m Material) bool {
	def, ok := c.defs[m]
	return ok && def.Block
}

// Len returns the number of known materials.
func (c *Catalog) Len() int {
	return len(c.defs)
}
