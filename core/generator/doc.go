// Package generator implements the lifecycle of infinite block generators.
//
// A generator is a marker block (by default SEA_LANTERN) placed from an item
// tagged with a generator type. The type names a palette of materials; the
// engine keeps the block above the anchor (the production slot) filled with a
// random palette member.
//
// # Components
//
//   - Registry: generator type -> ordered material palette, built once from config.
//   - Store: durable generators table (world, x, y, z, type) on GORM.
//   - Index: concurrent coordinate -> type map, the authoritative live set.
//   - Reconciler: one pass re-derives validity from observed blocks, purges
//     stale anchors and refills empty production slots.
//   - Planner: pure transition planning for place and break events, returning
//     ordered effects that the Engine applies.
//   - Scheduler: recurring and delayed jobs dispatched onto the world context;
//     TickerScheduler in production, ManualScheduler in tests.
//
// # Modes
//
// In durable mode generators are persisted, restored at startup and reconciled
// every interval; breaking an anchor requires the intent signal. In lightweight
// mode nothing is persisted, the generator block regenerates itself after a
// delay (extended near a booster block), and out-of-band removal is not
// detected. A durable engine without a store still reconciles, but nothing
// survives a restart.
//
// Hosts that let the engine own block writes set PlaceEvent.Block and
// BreakEvent.Clear; the write then happens on the world context in the same
// job as the transition, ahead of any regeneration it schedules.
//
// # Usage
//
//	reg := generator.NewRegistry(cfg.Generators, world.DefaultCatalog(), logger)
//	store, _ := generator.OpenStore(db, logger)
//	eng := generator.NewEngine(cfg.Generator, reg, store, oracle, sched, nil, logger)
//	if _, err := eng.Start(ctx); err != nil {
//	    return err
//	}
//	defer eng.Stop()
package generator
