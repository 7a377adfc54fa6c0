package config

import (
	"os"
	"path/filepath"
	"testing"

	"blocks-generator/core/generator"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/generators.db", cfg.Database.Name)
	assert.Equal(t, "generator-backups", cfg.Storage.Bucket)
	assert.Equal(t, 10, cfg.Storage.Retain)
	assert.Equal(t, generator.DefaultConfig(), cfg.Generator)
	assert.Empty(t, cfg.Generators)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
generator:
  mode: lightweight
  companion_enabled: true
generators:
  stone:
    blocks: [STONE, COBBLESTONE]
  Ores:
    blocks:
      - coal_ore
      - iron_ore
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, generator.ModeLightweight, cfg.Generator.Mode)
	assert.True(t, cfg.Generator.CompanionEnabled)
	assert.Equal(t, 100, cfg.Generator.IntervalMS)
	require.Len(t, cfg.Generators, 2)
	assert.Equal(t, []string{"STONE", "COBBLESTONE"}, cfg.Generators["stone"].Blocks)
	assert.Equal(t, []string{"coal_ore", "iron_ore"}, cfg.Generators["ores"].Blocks)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "generator:\n  interval_ms: 500\n")
	t.Setenv("GENERATOR_INTERVAL_MS", "250")
	t.Setenv("SERVER_API_KEY", "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Generator.IntervalMS)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "DATABASE_DRIVER=mysql\nDATABASE_NAME=generators\n")
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("DATABASE_NAME")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "generators", cfg.Database.Name)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("Mode", func(t *testing.T) {
		t.Setenv("GENERATOR_MODE", "eternal")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "mode")
	})

	t.Run("Driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "postgres")
	})

	t.Run("MalformedFile", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "config.yaml", "generators: [unclosed")
		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}

func TestBindValues_SkipsCollections(t *testing.T) {
	v := viper.New()
	bindValues(v, Config{}, "")

	assert.Equal(t, "durable", v.GetString("generator.mode"))
	assert.False(t, v.IsSet("generators"))
}
