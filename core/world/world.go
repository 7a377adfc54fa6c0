package world

import (
	"fmt"
	"math"
)

// Material identifies what occupies a block position, e.g. "STONE" or "SEA_LANTERN".
// Material names are always upper-case.
type Material string

// Air is the material of an empty block position.
const Air Material = "AIR"

// IsAir reports whether the material represents an empty block position.
func (m Material) IsAir() bool {
	return m == "" || m == Air
}

// Coord is a block position qualified by the world it belongs to.
// Two coordinates with the same integers in different worlds are distinct.
type Coord struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// Add returns the coordinate offset by the given deltas, in the same world.
func (c Coord) Add(dx, dy, dz int) Coord {
	return Coord{World: c.World, X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Above returns the coordinate directly above c.
func (c Coord) Above() Coord {
	return c.Add(0, 1, 0)
}

// ChunkX returns the x coordinate of the 16x16 column containing c.
func (c Coord) ChunkX() int {
	return c.X >> 4
}

// ChunkZ returns the z coordinate of the 16x16 column containing c.
func (c Coord) ChunkZ() int {
	return c.Z >> 4
}

// Chebyshev returns the chessboard distance between two coordinates.
// Coordinates in different worlds are infinitely far apart.
func (c Coord) Chebyshev(o Coord) int {
	if c.World != o.World {
		return math.MaxInt
	}
	return max(abs(c.X-o.X), abs(c.Y-o.Y), abs(c.Z-o.Z))
}

func (c Coord) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)", c.World, c.X, c.Y, c.Z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Oracle is the view of the host world that the generator engine needs.
// Implementations must only be mutated from the world-owning context.
type Oracle interface {
	// WorldLoaded reports whether a world with the given name is currently loaded.
	WorldLoaded(name string) bool
	// ChunkLoaded reports whether the chunk containing c is loaded.
	// Callers must not read or write blocks in unloaded chunks.
	ChunkLoaded(c Coord) bool
	// Material returns the material currently occupying c.
	Material(c Coord) Material
	// SetMaterial replaces the material at c.
	SetMaterial(c Coord, m Material)
}
