package generator

import (
	"context"

	"blocks-generator/core/world"

	"go.uber.org/zap"
)

// PassReport summarises one reconciliation pass.
type PassReport struct {
	// Checked counts entries visited.
	Checked int `json:"checked"`
	// Skipped counts entries in unloaded chunks.
	Skipped int `json:"skipped"`
	// Purged counts stale entries removed from the index and the store.
	Purged int `json:"purged"`
	// Regenerated counts production slots that were refilled.
	Regenerated int `json:"regenerated"`
	// Inert counts entries whose type is no longer in the registry.
	Inert int `json:"inert"`
}

// Reconciler re-derives generator validity from observed block state.
type Reconciler struct {
	index    *Index
	store    *Store
	registry *Registry
	oracle   world.Oracle
	picker   *Picker
	marker   world.Material
	logger   *zap.Logger
}

// NewReconciler creates a reconciler. store may be nil.
func NewReconciler(index *Index, store *Store, registry *Registry, oracle world.Oracle, picker *Picker, marker world.Material, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		index:    index,
		store:    store,
		registry: registry,
		oracle:   oracle,
		picker:   picker,
		marker:   marker,
		logger:   logger,
	}
}

// Pass visits every tracked generator once. Entries in unloaded chunks are left
// alone; entries whose anchor is no longer the marker are purged; otherwise an
// empty production slot is refilled.
func (r *Reconciler) Pass(ctx context.Context) PassReport {
	var rep PassReport
	r.index.Range(func(c world.Coord, typ string) bool {
		rep.Checked++
		if !r.oracle.ChunkLoaded(c) {
			rep.Skipped++
			return true
		}

		if r.oracle.Material(c) != r.marker {
			r.purge(ctx, c, typ)
			rep.Purged++
			return true
		}

		slot := c.Above()
		if !r.oracle.Material(slot).IsAir() {
			return true
		}
		if regenerate(r.oracle, r.registry, r.picker, slot, typ) {
			rep.Regenerated++
		} else {
			rep.Inert++
		}
		return true
	})
	return rep
}

func (r *Reconciler) purge(ctx context.Context, c world.Coord, typ string) {
	r.index.Remove(c)
	if r.store != nil {
		_ = r.store.Delete(ctx, c)
	}
	r.logger.Info("Removed stale generator", zap.Stringer("coord", c), zap.String("type", typ))
}

// regenerate sets c to a random material of typ's palette. It is a no-op for
// types that are no longer registered.
func regenerate(oracle world.Oracle, registry *Registry, picker *Picker, c world.Coord, typ string) bool {
	palette, ok := registry.Resolve(typ)
	if !ok {
		return false
	}
	m, ok := picker.Pick(palette)
	if !ok {
		return false
	}
	oracle.SetMaterial(c, m)
	return true
}
