package world

import "sync"

type chunkPos struct {
	world string
	x, z  int
}

// Memory is an in-process Oracle backed by maps.
// Every chunk of a loaded world is considered loaded unless explicitly unloaded.
type Memory struct {
	mu       sync.RWMutex
	worlds   map[string]struct{}
	unloaded map[chunkPos]struct{}
	blocks   map[Coord]Material
}

// NewMemory creates a Memory oracle with the given worlds loaded.
func NewMemory(worlds ...string) *Memory {
	m := &Memory{
		worlds:   make(map[string]struct{}),
		unloaded: make(map[chunkPos]struct{}),
		blocks:   make(map[Coord]Material),
	}
	for _, w := range worlds {
		m.worlds[w] = struct{}{}
	}
	return m
}

// LoadWorld marks a world as loaded.
func (m *Memory) LoadWorld(name string) {
	m.mu.Lock()
	m.worlds[name] = struct{}{}
	m.mu.Unlock()
}

// UnloadWorld marks a world as unloaded. Its blocks are kept.
func (m *Memory) UnloadWorld(name string) {
	m.mu.Lock()
	delete(m.worlds, name)
	m.mu.Unlock()
}

// UnloadChunk marks the chunk containing c as unloaded.
func (m *Memory) UnloadChunk(c Coord) {
	m.mu.Lock()
	m.unloaded[chunkPos{c.World, c.ChunkX(), c.ChunkZ()}] = struct{}{}
	m.mu.Unlock()
}

// LoadChunk marks the chunk containing c as loaded again.
func (m *Memory) LoadChunk(c Coord) {
	m.mu.Lock()
	delete(m.unloaded, chunkPos{c.World, c.ChunkX(), c.ChunkZ()})
	m.mu.Unlock()
}

// WorldLoaded implements Oracle.
func (m *Memory) WorldLoaded(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.worlds[name]
	return ok
}

// ChunkLoaded implements Oracle.
func (m *Memory) ChunkLoaded(c Coord) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.worlds[c.World]; !ok {
		return false
	}
	_, unloaded := m.unloaded[chunkPos{c.World, c.ChunkX(), c.ChunkZ()}]
	return !unloaded
}

// Material implements Oracle. Positions never written are air.
func (m *Memory) Material(c Coord) Material {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mat, ok := m.blocks[c]; ok {
		return mat
	}
	return Air
}

// SetMaterial implements Oracle.
func (m *Memory) SetMaterial(c Coord, mat Material) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mat.IsAir() {
		delete(m.blocks, c)
		return
	}
	m.blocks[c] = mat
}

// Blocks returns the number of non-air positions.
func (m *Memory) Blocks() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blocks)
}
