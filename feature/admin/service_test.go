package admin_test

import (
	"context"
	"testing"
	"time"

	"blocks-generator/core/generator"
	"blocks-generator/core/world"
	"blocks-generator/feature/admin"
	"blocks-generator/feature/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LightweightBreakRegenerates(t *testing.T) {
	ctx := context.Background()
	cfg := generator.DefaultConfig()
	cfg.Mode = generator.ModeLightweight
	cfg.BaseDelayMS = 0

	reg := generator.NewRegistry(map[string]generator.TypeConfig{
		"stone": {Blocks: []string{"stone", "cobblestone"}},
	}, world.DefaultCatalog(), nil)
	mem := world.NewMemory("w")
	sched := generator.NewTickerScheduler()
	eng := generator.NewEngine(cfg, reg, nil, mem, sched, generator.NewSeededPicker(3), nil)
	_, err := eng.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		sched.Close()
		_ = eng.Stop()
	})

	svc := admin.NewService(eng, mem, command.NewMemoryPlayers(), nil)

	const n = 50
	for i := range n {
		c := world.Coord{World: "w", X: i * 4, Y: 64, Z: 0}
		out, err := svc.Place(ctx, admin.PlaceRequest{World: c.World, X: c.X, Y: c.Y, Z: c.Z, Type: "stone"})
		require.NoError(t, err)
		require.True(t, out.Tracked)

		out, err = svc.Break(ctx, admin.BreakRequest{World: c.World, X: c.X, Y: c.Y, Z: c.Z})
		require.NoError(t, err)
		require.False(t, out.Cancelled)
	}

	assert.Eventually(t, func() bool {
		for i := range n {
			if svc.Block(world.Coord{World: "w", X: i * 4, Y: 64, Z: 0}).IsAir() {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
	assert.Len(t, eng.Generators(), n)
}

func TestService_PlainBreakClearsBlock(t *testing.T) {
	e := setup(t)
	svc := admin.NewService(e.engine, e.world, e.players, nil)
	c := world.Coord{World: "w", X: 1, Y: 2, Z: 3}
	_, err := svc.Place(context.Background(), admin.PlaceRequest{World: "w", X: 1, Y: 2, Z: 3, Material: "stone"})
	require.NoError(t, err)
	assert.Equal(t, world.Material("STONE"), e.world.Material(c))

	out, err := svc.Break(context.Background(), admin.BreakRequest{World: "w", X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.False(t, out.Tracked)
	assert.True(t, e.world.Material(c).IsAir())
}
