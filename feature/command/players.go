package command

import (
	"sort"
	"strings"
	"sync"

	"blocks-generator/core/generator"
)

// Player is an online actor that can receive items.
type Player interface {
	Name() string
	Give(item generator.Item)
}

// Players resolves online actors by name.
type Players interface {
	// Lookup finds an online player, case-insensitively.
	Lookup(name string) (Player, bool)
	// Online returns the names of online players.
	Online() []string
}

// MemoryPlayers is an in-memory Players used by the standalone host.
type MemoryPlayers struct {
	mu      sync.RWMutex
	players map[string]*memoryPlayer
}

type memoryPlayer struct {
	mu        sync.Mutex
	name      string
	inventory []generator.Item
}

func (p *memoryPlayer) Name() string {
	return p.name
}

func (p *memoryPlayer) Give(item generator.Item) {
	p.mu.Lock()
	p.inventory = append(p.inventory, item)
	p.mu.Unlock()
}

// NewMemoryPlayers creates a roster with the given players online.
func NewMemoryPlayers(names ...string) *MemoryPlayers {
	m := &MemoryPlayers{players: make(map[string]*memoryPlayer)}
	for _, n := range names {
		m.Join(n)
	}
	return m
}

// Join marks a player online. Joining twice keeps the existing inventory.
func (m *MemoryPlayers) Join(name string) {
	key := strings.ToLower(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.players[key]; !ok {
		m.players[key] = &memoryPlayer{name: name}
	}
}

// Leave marks a player offline and drops their inventory.
func (m *MemoryPlayers) Leave(name string) {
	m.mu.Lock()
	delete(m.players, strings.ToLower(name))
	m.mu.Unlock()
}

// Lookup implements Players.
func (m *MemoryPlayers) Lookup(name string) (Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return p, true
}

// Online implements Players. Names are sorted.
func (m *MemoryPlayers) Online() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.players))
	for _, p := range m.players {
		names = append(names, p.name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Inventory returns a copy of the items a player holds.
func (m *MemoryPlayers) Inventory(name string) []generator.Item {
	m.mu.RLock()
	p, ok := m.players[strings.ToLower(name)]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]generator.Item(nil), p.inventory...)
}
