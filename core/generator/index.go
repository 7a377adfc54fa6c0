package generator

import (
	"sort"
	"sync"
	"sync/atomic"

	"blocks-generator/core/world"
)

// Entry is one tracked generator.
type Entry struct {
	Coord world.Coord `json:"coord"`
	Type  string      `json:"type"`
}

// View is the read-only side of the index used by transition planning.
type View interface {
	Get(c world.Coord) (string, bool)
}

// Index is the authoritative in-memory set of live generators.
//
// Event handlers and the reconciliation task touch it from different
// scheduling contexts, so it is backed by a sync.Map. Range tolerates removal
// of the entry being visited.
type Index struct {
	m sync.Map // world.Coord -> string
	n atomic.Int64
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Put tracks c as a generator of the given type, replacing any previous type.
func (i *Index) Put(c world.Coord, typ string) {
	if _, loaded := i.m.Swap(c, typ); !loaded {
		i.n.Add(1)
	}
}

// Remove stops tracking c and returns the type it had.
func (i *Index) Remove(c world.Coord) (string, bool) {
	v, ok := i.m.LoadAndDelete(c)
	if !ok {
		return "", false
	}
	i.n.Add(-1)
	return v.(string), true
}

// Get returns the type tracked at c.
func (i *Index) Get(c world.Coord) (string, bool) {
	v, ok := i.m.Load(c)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Range calls fn for every entry until fn returns false.
// Entries added or removed during iteration may or may not be visited, but no
// entry is visited twice.
func (i *Index) Range(fn func(c world.Coord, typ string) bool) {
	i.m.Range(func(k, v any) bool {
		return fn(k.(world.Coord), v.(string))
	})
}

// Len returns the number of tracked generators.
func (i *Index) Len() int {
	return int(i.n.Load())
}

// Snapshot returns all entries ordered by world, then x, y, z.
func (i *Index) Snapshot() []Entry {
	entries := make([]Entry, 0, i.Len())
	i.Range(func(c world.Coord, typ string) bool {
		entries = append(entries, Entry{Coord: c, Type: typ})
		return true
	})
	sort.Slice(entries, func(a, b int) bool {
		ca, cb := entries[a].Coord, entries[b].Coord
		if ca.World != cb.World {
			return ca.World < cb.World
		}
		if ca.X != cb.X {
			return ca.X < cb.X
		}
		if ca.Y != cb.Y {
			return ca.Y < cb.Y
		}
		return ca.Z < cb.Z
	})
	return entries
}

// Clear removes every entry.
func (i *Index) Clear() {
	i.Range(func(c world.Coord, _ string) bool {
		i.Remove(c)
		return true
	})
}
