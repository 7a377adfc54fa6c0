// Package world models the parts of the host game world the generator engine touches.
//
// # Coordinates
//
// Coord is a world-qualified block position and is used directly as a map key, so
// equality is exact on the world name and the three integers.
//
// # Oracle
//
// The Oracle interface is the only way the engine reads or writes blocks. A host
// adapter implements it on top of the real server; Memory implements it in-process
// for tests and for the standalone server started by the CLI.
//
// # Catalog
//
// The material catalog (materials.yaml, embedded) lists every known material and
// whether it is a placeable block. Palette entries are validated against it.
//
//	cat := world.DefaultCatalog()
//	m, ok := cat.Parse("stone") // STONE, true
//	cat.IsBlock(m)              // true
package world
