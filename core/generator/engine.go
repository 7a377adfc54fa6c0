package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"blocks-generator/core/world"

	"go.uber.org/zap"
)

var (
	// ErrUnknownType is returned for generator types missing from the registry.
	ErrUnknownType = errors.New("unknown generator type")
	// ErrNotTracked is returned when no generator is tracked at a coordinate.
	ErrNotTracked = errors.New("no generator at coordinate")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("engine already started")
)

// Message is a chat line for an actor.
type Message struct {
	Actor string `json:"actor"`
	Text  string `json:"text"`
}

// Outcome tells the host what to do with the event it reported.
type Outcome struct {
	// Tracked is true when the event concerned a generator.
	Tracked bool `json:"tracked"`
	// Cancelled asks the host to cancel the event.
	Cancelled bool `json:"cancelled"`
	// SuppressDrops asks the host not to drop the block's normal items.
	SuppressDrops bool `json:"suppress_drops"`
	// Drops are items the host must drop at the event coordinate.
	Drops    []Item    `json:"drops,omitempty"`
	Messages []Message `json:"messages,omitempty"`
}

// RestoreReport summarises the startup scan of the durable store.
type RestoreReport struct {
	Rows         int `json:"rows"`
	Loaded       int `json:"loaded"`
	UnknownWorld int `json:"unknown_world"`
	UnknownType  int `json:"unknown_type"`
	Stale        int `json:"stale"`
	Deferred     int `json:"deferred"`
	// Unverified counts rows restored in unloaded chunks; the reconciler checks
	// their anchor once the chunk loads.
	Unverified int `json:"unverified"`
}

// Engine owns the generator lifecycle: placement, removal, restore,
// reconciliation and delayed regeneration.
type Engine struct {
	cfg        Config
	marker     world.Material
	booster    world.Material
	registry   *Registry
	index      *Index
	store      *Store
	oracle     world.Oracle
	sched      Scheduler
	picker     *Picker
	planner    *Planner
	reconciler *Reconciler
	logger     *zap.Logger

	mu       sync.Mutex
	started  bool
	ctx      context.Context
	task     Task
	deferred map[string][]Row
}

// NewEngine wires an engine. store may be nil in lightweight mode.
func NewEngine(cfg Config, registry *Registry, store *Store, oracle world.Oracle, sched Scheduler, picker *Picker, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if picker == nil {
		picker = NewRandomPicker()
	}
	marker := world.Material(strings.ToUpper(cfg.Marker))
	index := NewIndex()
	return &Engine{
		cfg:        cfg,
		marker:     marker,
		booster:    world.Material(strings.ToUpper(cfg.Booster)),
		registry:   registry,
		index:      index,
		store:      store,
		oracle:     oracle,
		sched:      sched,
		picker:     picker,
		planner:    NewPlanner(cfg, registry),
		reconciler: NewReconciler(index, store, registry, oracle, picker, marker, logger),
		logger:     logger,
		ctx:        context.Background(),
		deferred:   make(map[string][]Row),
	}
}

// Start restores persisted generators and begins reconciliation (durable
// mode). Without a store the durable engine still reconciles what is placed
// in this run. In lightweight mode the index starts empty and nothing recurs.
func (e *Engine) Start(ctx context.Context) (RestoreReport, error) {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return RestoreReport{}, ErrAlreadyStarted
	}
	e.started = true
	e.ctx = context.WithoutCancel(ctx)
	e.mu.Unlock()

	if !e.cfg.Durable() {
		e.logger.Info("Generator engine started", zap.String("mode", e.cfg.Mode))
		return RestoreReport{}, nil
	}

	var rep RestoreReport
	if e.store != nil {
		rep = e.Restore(ctx)
	} else {
		e.logger.Error("Durable store unavailable, generators will not survive a restart")
	}

	e.mu.Lock()
	e.task = e.sched.Every(e.cfg.Interval(), func() {
		e.reconciler.Pass(e.ctx)
	})
	e.mu.Unlock()

	e.logger.Info("Generator engine started",
		zap.String("mode", e.cfg.Mode),
		zap.Duration("interval", e.cfg.Interval()),
	)
	return rep, nil
}

// Stop cancels the recurring task, releases the index and closes the store.
// Every mutation is already persisted, so nothing is written here.
func (e *Engine) Stop() error {
	e.mu.Lock()
	task := e.task
	e.task = nil
	e.started = false
	e.mu.Unlock()

	if task != nil {
		task.Cancel()
	}
	e.index.Clear()
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Restore seeds the index from the durable store.
//
// Rows of worlds that are not loaded are dropped, or kept aside when
// DeferUnloadedWorlds is set. Rows with unknown types or whose anchor is not
// the marker are dropped. Dropped rows stay in the store.
func (e *Engine) Restore(ctx context.Context) RestoreReport {
	var rep RestoreReport
	if e.store == nil {
		return rep
	}
	rows, err := e.store.ScanAll(ctx)
	if err != nil {
		return rep
	}
	rep.Rows = len(rows)
	for _, row := range rows {
		e.restoreRow(row, &rep)
	}
	e.logger.Info("Loaded generators from database",
		zap.Int("rows", rep.Rows),
		zap.Int("loaded", rep.Loaded),
		zap.Int("unknown_world", rep.UnknownWorld),
		zap.Int("unknown_type", rep.UnknownType),
		zap.Int("stale", rep.Stale),
		zap.Int("deferred", rep.Deferred),
	)
	return rep
}

func (e *Engine) restoreRow(row Row, rep *RestoreReport) {
	c := row.Coord()
	if !e.oracle.WorldLoaded(row.World) {
		if e.cfg.DeferUnloadedWorlds {
			e.mu.Lock()
			e.deferred[row.World] = append(e.deferred[row.World], row)
			e.mu.Unlock()
			rep.Deferred++
			return
		}
		rep.UnknownWorld++
		return
	}
	typ := strings.ToLower(row.Type)
	if !e.registry.Has(typ) {
		rep.UnknownType++
		return
	}
	if !e.oracle.ChunkLoaded(c) {
		e.index.Put(c, typ)
		rep.Loaded++
		rep.Unverified++
		return
	}
	if e.oracle.Material(c) != e.marker {
		rep.Stale++
		return
	}
	e.index.Put(c, typ)
	rep.Loaded++
}

// WorldLoaded restores the rows deferred for a world that just loaded.
func (e *Engine) WorldLoaded(name string) RestoreReport {
	e.mu.Lock()
	rows := e.deferred[name]
	delete(e.deferred, name)
	e.mu.Unlock()

	var rep RestoreReport
	rep.Rows = len(rows)
	if len(rows) == 0 {
		return rep
	}
	e.sched.Do(func() {
		for _, row := range rows {
			e.restoreRow(row, &rep)
		}
	})
	e.logger.Info("Restored deferred generators", zap.String("world", name), zap.Int("loaded", rep.Loaded))
	return rep
}

// Deferred returns the number of rows waiting for their world to load.
func (e *Engine) Deferred() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, rows := range e.deferred {
		n += len(rows)
	}
	return n
}

// Place handles a placement event on the world context.
func (e *Engine) Place(ctx context.Context, ev PlaceEvent) Outcome {
	var out Outcome
	e.sched.Do(func() {
		if ev.Block != "" {
			e.oracle.SetMaterial(ev.Coord, ev.Block)
		}
		out = e.Apply(ctx, e.planner.PlanPlace(e.index, ev))
	})
	if out.Tracked {
		e.logger.Info("Generator placed",
			zap.Stringer("coord", ev.Coord),
			zap.String("type", strings.ToLower(ev.Item.Type)),
			zap.String("actor", ev.Actor),
		)
	}
	return out
}

// Break handles a break event on the world context.
func (e *Engine) Break(ctx context.Context, ev BreakEvent) Outcome {
	var out Outcome
	e.sched.Do(func() {
		if !e.cfg.Durable() && !ev.Intent {
			if _, ok := e.index.Get(ev.Coord); ok {
				ev.Boosted = e.boosted(ev.Coord)
			}
		}
		t := e.planner.PlanBreak(e.index, ev)
		if ev.Clear && !t.Has(EffectCancel) {
			e.oracle.SetMaterial(ev.Coord, world.Air)
		}
		out = e.Apply(ctx, t)
	})
	if out.Tracked {
		e.logger.Debug("Generator break handled",
			zap.Stringer("coord", ev.Coord),
			zap.Bool("intent", ev.Intent),
			zap.Bool("cancelled", out.Cancelled),
		)
	}
	return out
}

// Apply performs a transition's effects in order and collects what the host
// has to do.
func (e *Engine) Apply(ctx context.Context, t Transition) Outcome {
	out := Outcome{Tracked: len(t.Effects) > 0}
	for _, eff := range t.Effects {
		switch eff.Kind {
		case EffectIndexPut:
			e.index.Put(eff.Coord, eff.Type)
		case EffectIndexRemove:
			e.index.Remove(eff.Coord)
		case EffectStoreUpsert:
			if e.store != nil {
				_ = e.store.Upsert(ctx, eff.Coord, eff.Type)
			}
		case EffectStoreDelete:
			if e.store != nil {
				_ = e.store.Delete(ctx, eff.Coord)
			}
		case EffectRegenerate:
			if eff.OnlyIfEmpty && !e.oracle.Material(eff.Coord).IsAir() {
				continue
			}
			regenerate(e.oracle, e.registry, e.picker, eff.Coord, eff.Type)
		case EffectSchedule:
			e.scheduleRegen(eff.Coord, eff.Type, eff.Delay)
		case EffectCancel:
			out.Cancelled = true
		case EffectSuppressDrop:
			out.SuppressDrops = true
		case EffectDropItem:
			if eff.Item != nil {
				out.Drops = append(out.Drops, *eff.Item)
			}
		case EffectMessage:
			out.Messages = append(out.Messages, Message{Actor: eff.Actor, Text: eff.Text})
		}
	}
	return out
}

// scheduleRegen refills c after delay if, by then, c is still a generator of
// the same type and still empty.
func (e *Engine) scheduleRegen(c world.Coord, typ string, delay time.Duration) {
	e.sched.After(delay, func() {
		if cur, ok := e.index.Get(c); !ok || cur != typ {
			return
		}
		if !e.oracle.ChunkLoaded(c) || !e.oracle.Material(c).IsAir() {
			return
		}
		regenerate(e.oracle, e.registry, e.picker, c, typ)
	})
}

// boosted reports whether the extended delay applies at c.
func (e *Engine) boosted(c world.Coord) bool {
	if !e.cfg.CompanionEnabled || e.booster == "" {
		return false
	}
	return NearBooster(e.oracle, c, e.cfg.BoosterRadius, e.booster)
}

// NearBooster reports whether a booster block lies within the Chebyshev
// radius of c. Positions in unloaded chunks are not read.
func NearBooster(oracle world.Oracle, c world.Coord, radius int, booster world.Material) bool {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				p := c.Add(dx, dy, dz)
				if !oracle.ChunkLoaded(p) {
					continue
				}
				if oracle.Material(p) == booster {
					return true
				}
			}
		}
	}
	return false
}

// Reconcile runs one reconciliation pass now, on the world context.
func (e *Engine) Reconcile(ctx context.Context) PassReport {
	var rep PassReport
	e.sched.Do(func() {
		rep = e.reconciler.Pass(ctx)
	})
	return rep
}

// Lookup returns the generator tracked at c.
func (e *Engine) Lookup(c world.Coord) (Entry, error) {
	typ, ok := e.index.Get(c)
	if !ok {
		return Entry{}, ErrNotTracked
	}
	return Entry{Coord: c, Type: typ}, nil
}

// Generators returns every tracked generator in coordinate order.
func (e *Engine) Generators() []Entry {
	return e.index.Snapshot()
}

// Item returns the reclaimable item for a generator type.
func (e *Engine) Item(typ string) (Item, error) {
	if !e.registry.Has(typ) {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	return NewItem(e.marker, typ), nil
}

// Registry returns the palette registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}
