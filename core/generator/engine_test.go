package generator_test

import (
	"context"
	"path/filepath"
	"testing"

	"blocks-generator/core/database"
	"blocks-generator/core/generator"
	"blocks-generator/core/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStoreAt(t *testing.T, path string) *generator.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: path})
	require.NoError(t, err)
	store, err := generator.OpenStore(db, nil)
	require.NoError(t, err)
	return store
}

func TestEngine_Start(t *testing.T) {
	t.Run("DurableWithoutStoreStillReconciles", func(t *testing.T) {
		f := newFixture(t, generator.DefaultConfig(), nil)
		rep, err := f.eng.Start(context.Background())
		require.NoError(t, err)
		assert.Equal(t, generator.RestoreReport{}, rep)
		assert.Equal(t, 1, f.sched.Recurring())

		require.True(t, f.place(t, home, "ab").Tracked)
		f.mem.SetMaterial(home.Above(), world.Air)
		f.sched.Tick()
		assert.True(t, inPalette(f.mem.Material(home.Above()), "DIRT", "SAND"))

		f.mem.SetMaterial(home, "STONE")
		f.sched.Tick()
		assert.Empty(t, f.eng.Generators())
		assert.NoError(t, f.eng.Stop())
	})

	t.Run("SecondStartFails", func(t *testing.T) {
		f := durableFixture(t)
		_, err := f.eng.Start(context.Background())
		assert.ErrorIs(t, err, generator.ErrAlreadyStarted)
	})

	t.Run("StopCancelsReconciliation", func(t *testing.T) {
		f := durableFixture(t)
		assert.Equal(t, 1, f.sched.Recurring())
		require.NoError(t, f.eng.Stop())
		assert.Equal(t, 0, f.sched.Recurring())
		assert.Empty(t, f.eng.Generators())
	})

	t.Run("LightweightHasNoRecurringWork", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		assert.Equal(t, 0, f.sched.Recurring())
		assert.NoError(t, f.eng.Stop())
	})
}

func TestEngine_Durable(t *testing.T) {
	ctx := context.Background()

	t.Run("PlaceTracksAndProduces", func(t *testing.T) {
		f := durableFixture(t)
		out := f.place(t, home, "AB")

		assert.True(t, out.Tracked)
		entry, err := f.eng.Lookup(home)
		require.NoError(t, err)
		assert.Equal(t, "ab", entry.Type)
		assert.Equal(t, []generator.Row{{World: "w", X: 10, Y: 64, Z: 10, Type: "ab"}}, f.rows(t))
		assert.True(t, inPalette(f.mem.Material(home.Above()), "DIRT", "SAND"))
		assert.Equal(t, marker, f.mem.Material(home))
	})

	t.Run("PlaceKeepsOccupiedSlot", func(t *testing.T) {
		f := durableFixture(t)
		f.mem.SetMaterial(home.Above(), "OBSIDIAN")
		f.place(t, home, "ab")
		assert.Equal(t, world.Material("OBSIDIAN"), f.mem.Material(home.Above()))
	})

	t.Run("PlaceIgnoresPlainBlocks", func(t *testing.T) {
		f := durableFixture(t)
		f.mem.SetMaterial(home, marker)
		out := f.eng.Place(ctx, generator.PlaceEvent{Coord: home, Item: &generator.Item{Material: marker}})

		assert.False(t, out.Tracked)
		_, err := f.eng.Lookup(home)
		assert.ErrorIs(t, err, generator.ErrNotTracked)
		assert.Empty(t, f.rows(t))
	})

	t.Run("BreakWithoutIntentIsCancelled", func(t *testing.T) {
		f := durableFixture(t)
		f.place(t, home, "ab")

		out := f.eng.Break(ctx, generator.BreakEvent{Coord: home, Actor: "steve"})
		assert.True(t, out.Cancelled)
		assert.False(t, out.SuppressDrops)
		assert.Equal(t, []generator.Message{{Actor: "steve", Text: "Sneak to break the generator!"}}, out.Messages)

		_, err := f.eng.Lookup(home)
		assert.NoError(t, err)
		assert.Len(t, f.rows(t), 1)
	})

	t.Run("BreakWithIntentRemoves", func(t *testing.T) {
		f := durableFixture(t)
		f.place(t, home, "ab")

		out := f.eng.Break(ctx, generator.BreakEvent{Coord: home, Actor: "steve", Intent: true})
		assert.False(t, out.Cancelled)
		assert.True(t, out.SuppressDrops)
		require.Len(t, out.Drops, 1)
		assert.Equal(t, "ab", out.Drops[0].Type)
		assert.Equal(t, marker, out.Drops[0].Material)

		_, err := f.eng.Lookup(home)
		assert.ErrorIs(t, err, generator.ErrNotTracked)
		assert.Empty(t, f.rows(t))
	})

	t.Run("BreakOfOrdinaryBlock", func(t *testing.T) {
		f := durableFixture(t)
		out := f.eng.Break(ctx, generator.BreakEvent{Coord: home, Intent: true})
		assert.Equal(t, generator.Outcome{}, out)
	})

	t.Run("TickRefillsMinedSlot", func(t *testing.T) {
		f := durableFixture(t)
		f.place(t, home, "ab")
		f.mem.SetMaterial(home.Above(), world.Air)

		f.sched.Tick()
		assert.True(t, inPalette(f.mem.Material(home.Above()), "DIRT", "SAND"))
	})

	t.Run("TickPurgesRemovedAnchor", func(t *testing.T) {
		f := durableFixture(t)
		f.place(t, home, "ab")
		f.mem.SetMaterial(home, world.Air)

		f.sched.Tick()
		assert.Empty(t, f.eng.Generators())
		assert.Empty(t, f.rows(t))
	})

	t.Run("ReconcileNow", func(t *testing.T) {
		f := durableFixture(t)
		f.place(t, home, "ab")
		f.place(t, home.Add(5, 0, 0), "ores")
		f.mem.SetMaterial(home.Above(), world.Air)

		rep := f.eng.Reconcile(ctx)
		assert.Equal(t, 2, rep.Checked)
		assert.Equal(t, 1, rep.Regenerated)
	})

	t.Run("Item", func(t *testing.T) {
		f := durableFixture(t)
		item, err := f.eng.Item("Ores")
		require.NoError(t, err)
		assert.Equal(t, "Ores Generator", item.DisplayName)

		_, err = f.eng.Item("nether")
		assert.ErrorIs(t, err, generator.ErrUnknownType)
	})
}

func TestEngine_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTripAcrossRestart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "generators.db")
		mem := world.NewMemory("w")
		coords := []world.Coord{home, home.Add(3, 0, -7), {World: "w", X: -40, Y: 12, Z: 900}}

		first := generator.NewEngine(generator.DefaultConfig(), testRegistry(), openStoreAt(t, path), mem,
			generator.NewManualScheduler(), generator.NewSeededPicker(1), nil)
		_, err := first.Start(ctx)
		require.NoError(t, err)
		for _, c := range coords {
			item := generator.NewItem(marker, "ores")
			mem.SetMaterial(c, marker)
			first.Place(ctx, generator.PlaceEvent{Coord: c, Item: &item})
		}
		require.NoError(t, first.Stop())

		second := generator.NewEngine(generator.DefaultConfig(), testRegistry(), openStoreAt(t, path), mem,
			generator.NewManualScheduler(), generator.NewSeededPicker(2), nil)
		rep, err := second.Start(ctx)
		require.NoError(t, err)
		defer second.Stop()

		assert.Equal(t, 3, rep.Rows)
		assert.Equal(t, 3, rep.Loaded)
		got := second.Generators()
		require.Len(t, got, 3)
		for _, e := range got {
			assert.Contains(t, coords, e.Coord)
			assert.Equal(t, "ores", e.Type)
		}
	})

	t.Run("DropsInvalidRowsButKeepsThemStored", func(t *testing.T) {
		store := openStore(t)
		require.NoError(t, store.Upsert(ctx, home, "ab"))
		require.NoError(t, store.Upsert(ctx, world.Coord{World: "nether", Y: 64}, "ab"))
		require.NoError(t, store.Upsert(ctx, home.Add(1, 0, 0), "retired"))
		require.NoError(t, store.Upsert(ctx, home.Add(2, 0, 0), "ab"))

		f := newFixture(t, generator.DefaultConfig(), store)
		f.mem.SetMaterial(home, marker)
		f.mem.SetMaterial(home.Add(1, 0, 0), marker)
		f.mem.SetMaterial(home.Add(2, 0, 0), "STONE")

		rep, err := f.eng.Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, generator.RestoreReport{Rows: 4, Loaded: 1, UnknownWorld: 1, UnknownType: 1, Stale: 1}, rep)
		assert.Len(t, f.eng.Generators(), 1)
		assert.Len(t, f.rows(t), 4)
	})

	t.Run("UnloadedChunkIsUnverified", func(t *testing.T) {
		store := openStore(t)
		require.NoError(t, store.Upsert(ctx, home, "ab"))

		f := newFixture(t, generator.DefaultConfig(), store)
		f.mem.UnloadChunk(home)

		rep, err := f.eng.Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Loaded)
		assert.Equal(t, 1, rep.Unverified)

		f.mem.LoadChunk(home)
		f.sched.Tick()
		assert.Empty(t, f.eng.Generators(), "anchor was never the marker")
	})

	t.Run("DeferredWorld", func(t *testing.T) {
		store := openStore(t)
		nether := world.Coord{World: "nether", X: 1, Y: 40, Z: 1}
		require.NoError(t, store.Upsert(ctx, nether, "ores"))

		cfg := generator.DefaultConfig()
		cfg.DeferUnloadedWorlds = true
		f := newFixture(t, cfg, store)

		rep, err := f.eng.Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Deferred)
		assert.Equal(t, 1, f.eng.Deferred())
		assert.Empty(t, f.eng.Generators())

		f.mem.LoadWorld("nether")
		f.mem.SetMaterial(nether, marker)
		wrep := f.eng.WorldLoaded("nether")
		assert.Equal(t, 1, wrep.Loaded)
		assert.Equal(t, 0, f.eng.Deferred())

		_, err = f.eng.Lookup(nether)
		assert.NoError(t, err)
		assert.Equal(t, 0, f.eng.WorldLoaded("nether").Rows)
	})
}

func TestEngine_Lightweight(t *testing.T) {
	ctx := context.Background()

	t.Run("PlaceRegeneratesInPlace", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		out := f.place(t, home, "ores")

		assert.True(t, out.Tracked)
		assert.True(t, inPalette(f.mem.Material(home), "STONE", "COAL_ORE", "IRON_ORE"))
		assert.True(t, f.mem.Material(home.Above()).IsAir())
	})

	t.Run("BreakSchedulesRegen", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		f.place(t, home, "ores")

		out := f.eng.Break(ctx, generator.BreakEvent{Coord: home, Actor: "alex", Clear: true})
		assert.True(t, out.Tracked)
		assert.False(t, out.Cancelled)
		assert.True(t, f.mem.Material(home).IsAir())
		assert.Equal(t, 1, f.sched.Pending())

		assert.Equal(t, 1, f.sched.Advance(f.cfg.BaseDelay()))
		assert.True(t, inPalette(f.mem.Material(home), "STONE", "COAL_ORE", "IRON_ORE"))
	})

	t.Run("BoosterExtendsDelay", func(t *testing.T) {
		f := lightweightFixture(t, func(c *generator.Config) { c.CompanionEnabled = true })
		f.place(t, home, "ores")
		f.mem.SetMaterial(home.Add(2, -1, 1), "BEACON")

		f.eng.Break(ctx, generator.BreakEvent{Coord: home, Clear: true})

		assert.Equal(t, 0, f.sched.Advance(f.cfg.BaseDelay()))
		assert.True(t, f.mem.Material(home).IsAir())
		assert.Equal(t, 1, f.sched.Advance(f.cfg.BoostedDelay()-f.cfg.BaseDelay()))
		assert.False(t, f.mem.Material(home).IsAir())
	})

	t.Run("BoosterIgnoredWithoutCompanion", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		f.place(t, home, "ores")
		f.mem.SetMaterial(home.Add(1, 0, 0), "BEACON")

		f.eng.Break(ctx, generator.BreakEvent{Coord: home, Clear: true})
		assert.Equal(t, 1, f.sched.Advance(f.cfg.BaseDelay()))
	})

	t.Run("BoosterOutOfRange", func(t *testing.T) {
		f := lightweightFixture(t, func(c *generator.Config) { c.CompanionEnabled = true })
		f.place(t, home, "ores")
		f.mem.SetMaterial(home.Add(3, 0, 0), "BEACON")

		f.eng.Break(ctx, generator.BreakEvent{Coord: home, Clear: true})
		assert.Equal(t, 1, f.sched.Advance(f.cfg.BaseDelay()))
	})

	t.Run("BreakWithIntentStopsRegen", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		f.place(t, home, "ores")

		out := f.eng.Break(ctx, generator.BreakEvent{Coord: home, Intent: true, Clear: true})
		assert.True(t, out.SuppressDrops)
		require.Len(t, out.Drops, 1)
		assert.Equal(t, 0, f.sched.Pending())
		assert.Empty(t, f.eng.Generators())
	})

	t.Run("ZeroDelayRegenRunsAfterClear", func(t *testing.T) {
		f := lightweightFixture(t, func(c *generator.Config) { c.BaseDelayMS = 0 })
		f.place(t, home, "ores")

		f.eng.Break(ctx, generator.BreakEvent{Coord: home, Clear: true})
		assert.Equal(t, 1, f.sched.Advance(0))
		assert.True(t, inPalette(f.mem.Material(home), "STONE", "COAL_ORE", "IRON_ORE"))
	})

	t.Run("RegenSkipsOccupiedPosition", func(t *testing.T) {
		f := lightweightFixture(t, nil)
		f.place(t, home, "ores")

		f.eng.Break(ctx, generator.BreakEvent{Coord: home, Clear: true})
		f.mem.SetMaterial(home, "OBSIDIAN")

		f.sched.Advance(f.cfg.BaseDelay())
		assert.Equal(t, world.Material("OBSIDIAN"), f.mem.Material(home))
	})
}

func TestNearBooster(t *testing.T) {
	mem := world.NewMemory("w")
	assert.False(t, generator.NearBooster(mem, home, 2, "BEACON"))

	mem.SetMaterial(home.Add(-2, 2, -2), "BEACON")
	assert.True(t, generator.NearBooster(mem, home, 2, "BEACON"))
	assert.False(t, generator.NearBooster(mem, home, 1, "BEACON"))

	t.Run("SkipsUnloadedChunks", func(t *testing.T) {
		mem := world.NewMemory("w")
		edge := world.Coord{World: "w", X: 15, Y: 64, Z: 15}
		beacon := edge.Add(1, 0, 0)
		mem.SetMaterial(beacon, "BEACON")
		require.NotEqual(t, edge.ChunkX(), beacon.ChunkX())

		mem.UnloadChunk(beacon)
		assert.False(t, generator.NearBooster(mem, edge, 2, "BEACON"))

		mem.LoadChunk(beacon)
		assert.True(t, generator.NearBooster(mem, edge, 2, "BEACON"))
	})
}
