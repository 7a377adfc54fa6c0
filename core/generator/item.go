package generator

import (
	"strings"

	"blocks-generator/core/world"
)

// Item is the player-facing representation of a generator.
// Type is the tag that turns a placed marker block into a generator.
type Item struct {
	Material    world.Material `json:"material"`
	Type        string         `json:"type,omitempty"`
	DisplayName string         `json:"display_name,omitempty"`
	Lore        []string       `json:"lore,omitempty"`
	Glint       bool           `json:"glint,omitempty"`
}

// NewItem builds the generator item for typ.
func NewItem(marker world.Material, typ string) Item {
	typ = strings.ToLower(typ)
	return Item{
		Material:    marker,
		Type:        typ,
		DisplayName: displayName(typ),
		Lore:        []string{"Place this block to create", "an infinite block above it"},
		Glint:       true,
	}
}

func displayName(typ string) string {
	if typ == "" {
		return "Generator"
	}
	return strings.ToUpper(typ[:1]) + typ[1:] + " Generator"
}
