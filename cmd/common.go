package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"blocks-generator/core/config"
	"blocks-generator/core/database"
	"blocks-generator/core/generator"
	"blocks-generator/core/logger"
	"blocks-generator/core/storage"
	"blocks-generator/core/world"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openStore connects to the configured database and prepares the generators table.
func openStore(cfg *config.Config, l *zap.Logger) (*generator.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := generator.OpenStore(db, l)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to open generator store: %w", err)
	}

	l.Info("Connected to generators database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name),
	)
	return store, nil
}

// durableStore opens the store when the engine runs in durable mode. A failure
// is logged and the engine keeps serving from memory without persistence.
func durableStore(cfg *config.Config, l *zap.Logger) *generator.Store {
	if !cfg.Generator.Durable() {
		return nil
	}
	store, err := openStore(cfg, l)
	if err != nil {
		l.Error("Generators database unavailable, running without persistence", zap.Error(err))
		return nil
	}
	return store
}

// newRegistry builds the generator type registry from the configuration.
func newRegistry(cfg *config.Config, l *zap.Logger) *generator.Registry {
	registry := generator.NewRegistry(cfg.Generators, world.DefaultCatalog(), l)
	if registry.Len() == 0 {
		l.Warn("No generator types configured; placements will not be tracked")
	}
	return registry
}

// newStorageClient returns nil when the storage client cannot be created.
func newStorageClient(cfg *config.Config, l *zap.Logger) storage.Client {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Storage client unavailable, backups disabled", zap.Error(err))
		return nil
	}
	return client
}

// confirmDestructiveAction prompts the user for confirmation unless yes is set.
func confirmDestructiveAction(yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
