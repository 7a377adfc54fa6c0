package generator_test

import (
	"context"
	"testing"

	"blocks-generator/core/database"
	"blocks-generator/core/generator"
	"blocks-generator/core/world"

	"github.com/stretchr/testify/require"
)

const marker = world.Material("SEA_LANTERN")

var home = world.Coord{World: "w", X: 10, Y: 64, Z: 10}

func testRegistry() *generator.Registry {
	return generator.NewRegistry(map[string]generator.TypeConfig{
		"ab":   {Blocks: []string{"dirt", "sand"}},
		"ores": {Blocks: []string{"stone", "coal_ore", "iron_ore"}},
	}, world.DefaultCatalog(), nil)
}

func openStore(t *testing.T) *generator.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	store, err := generator.OpenStore(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

type fixture struct {
	cfg   generator.Config
	eng   *generator.Engine
	mem   *world.Memory
	sched *generator.ManualScheduler
	store *generator.Store
}

func newFixture(t *testing.T, cfg generator.Config, store *generator.Store) *fixture {
	t.Helper()
	mem := world.NewMemory("w")
	sched := generator.NewManualScheduler()
	eng := generator.NewEngine(cfg, testRegistry(), store, mem, sched, generator.NewSeededPicker(7), nil)
	return &fixture{cfg: cfg, eng: eng, mem: mem, sched: sched, store: store}
}

func durableFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, generator.DefaultConfig(), openStore(t))
	_, err := f.eng.Start(context.Background())
	require.NoError(t, err)
	return f
}

func lightweightFixture(t *testing.T, mutate func(*generator.Config)) *fixture {
	t.Helper()
	cfg := generator.DefaultConfig()
	cfg.Mode = generator.ModeLightweight
	if mutate != nil {
		mutate(&cfg)
	}
	f := newFixture(t, cfg, nil)
	_, err := f.eng.Start(context.Background())
	require.NoError(t, err)
	return f
}

// place reports the marker block being put down; the engine writes it.
func (f *fixture) place(t *testing.T, c world.Coord, typ string) generator.Outcome {
	t.Helper()
	item := generator.NewItem(marker, typ)
	return f.eng.Place(context.Background(), generator.PlaceEvent{Coord: c, Actor: "steve", Item: &item, Block: marker})
}

func (f *fixture) rows(t *testing.T) []generator.Row {
	t.Helper()
	rows, err := f.store.ScanAll(context.Background())
	require.NoError(t, err)
	return rows
}

func inPalette(m world.Material, palette ...world.Material) bool {
	for _, p := range palette {
		if p == m {
			return true
		}
	}
	return false
}
