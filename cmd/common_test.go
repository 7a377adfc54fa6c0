package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"blocks-generator/core/config"
	"blocks-generator/core/database"
	"blocks-generator/core/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDurableStore(t *testing.T) {
	t.Run("Lightweight", func(t *testing.T) {
		cfg := &config.Config{Generator: generator.Config{Mode: generator.ModeLightweight}}
		assert.Nil(t, durableStore(cfg, zap.NewNop()))
	})

	t.Run("Opens", func(t *testing.T) {
		cfg := &config.Config{
			Generator: generator.DefaultConfig(),
			Database:  database.Config{Driver: database.DriverSQLite, Name: filepath.Join(t.TempDir(), "generators.db")},
		}
		store := durableStore(cfg, zap.NewNop())
		require.NotNil(t, store)
		assert.NoError(t, store.Close())
	})

	t.Run("UnavailableDatabaseIsLogged", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
		cfg := &config.Config{
			Generator: generator.DefaultConfig(),
			Database:  database.Config{Driver: database.DriverSQLite, Name: filepath.Join(blocker, "data", "generators.db")},
		}

		core, logs := observer.New(zap.ErrorLevel)
		assert.Nil(t, durableStore(cfg, zap.New(core)))
		assert.Equal(t, 1, logs.FilterMessage("Generators database unavailable, running without persistence").Len())
	})
}
