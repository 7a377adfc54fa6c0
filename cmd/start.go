package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blocks-generator/core/generator"
	"blocks-generator/core/loader"
	"blocks-generator/core/logger"
	"blocks-generator/core/middleware/auth"
	"blocks-generator/core/middleware/rayid"
	"blocks-generator/core/world"
	"blocks-generator/feature/admin"
	"blocks-generator/feature/backup"
	"blocks-generator/feature/command"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "blocks-generator/docs/swagger"
)

// @title Blocks Generator API
// @version 1.0
// @description API for placing, breaking and inspecting infinite block generators.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var startWorlds []string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the generator engine and HTTP server",
	Long: `Restores persisted generators, starts reconciliation and serves the
event ingestion and administration API until interrupted.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringSliceVar(&startWorlds, "world", []string{"world"}, "Worlds loaded at startup")
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := newRegistry(cfg, logg)

	store := durableStore(cfg, logg)

	mem := world.NewMemory(startWorlds...)
	sched := generator.NewTickerScheduler()
	eng := generator.NewEngine(cfg.Generator, registry, store, mem, sched, generator.NewRandomPicker(), logger.ForEngine(logg, cfg.Generator.Mode))

	rep, err := eng.Start(ctx)
	if err != nil {
		sched.Close()
		_ = eng.Stop()
		return fmt.Errorf("failed to start generator engine: %w", err)
	}
	if cfg.Generator.Durable() {
		logg.Info("Generators restored",
			zap.Int("rows", rep.Rows),
			zap.Int("loaded", rep.Loaded),
			zap.Int("unknown_world", rep.UnknownWorld),
			zap.Int("unknown_type", rep.UnknownType),
			zap.Int("stale", rep.Stale),
			zap.Int("deferred", rep.Deferred),
			zap.Int("unverified", rep.Unverified),
		)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		}
		if err != nil {
			l.Error("Request error", append(fields, zap.Error(err))...)
			return err
		}
		l.Debug("Request handled", fields...)
		return nil
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

	players := command.NewMemoryPlayers()
	mgr := loader.NewManager(logg)

	adminFeature, err := admin.NewFeature(eng, mem, players, logg)
	if err != nil {
		sched.Close()
		_ = eng.Stop()
		return fmt.Errorf("failed to create admin feature: %w", err)
	}
	mgr.Register(adminFeature)
	mgr.Register(backup.NewFeature(store, newStorageClient(cfg, logg), cfg.Storage, logg))

	if err := mgr.LoadAll(app); err != nil {
		sched.Close()
		_ = eng.Stop()
		return fmt.Errorf("failed to load features: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
		return app.Listen(cfg.Server.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout())
	})
	serveErr := g.Wait()

	// Drain scheduled work before the store is closed
	sched.Close()
	if err := eng.Stop(); err != nil {
		logg.Error("Failed to stop generator engine", zap.Error(err))
	}

	if serveErr != nil && ctx.Err() == nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	logg.Info("Shutdown complete")
	return nil
}
