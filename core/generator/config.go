package generator

import (
	"fmt"
	"time"
)

const (
	// ModeDurable persists generators and reconciles them on a fixed interval.
	ModeDurable = "durable"
	// ModeLightweight keeps generators in memory only and regenerates broken
	// blocks after a delay.
	ModeLightweight = "lightweight"
)

// Config holds the generator engine settings.
type Config struct {
	// Mode selects the durable or lightweight strategy.
	Mode string `mapstructure:"mode" default:"durable"`
	// Marker is the material of the generator anchor block and of generator items.
	Marker string `mapstructure:"marker" default:"SEA_LANTERN"`
	// Booster is the material that extends the regeneration delay in lightweight mode.
	Booster string `mapstructure:"booster" default:"BEACON"`
	// BoosterRadius is the Chebyshev radius searched for a booster block.
	BoosterRadius int `mapstructure:"booster_radius" default:"2"`
	// CompanionEnabled reports whether the companion extension that activates
	// boosters is present.
	CompanionEnabled bool `mapstructure:"companion_enabled" default:"false"`
	// IntervalMS is the reconciliation interval in milliseconds.
	IntervalMS int `mapstructure:"interval_ms" default:"100"`
	// BaseDelayMS is the regeneration delay after a break, in milliseconds.
	BaseDelayMS int `mapstructure:"base_delay_ms" default:"50"`
	// BoostedDelayMS replaces BaseDelayMS when a booster is active.
	BoostedDelayMS int `mapstructure:"boosted_delay_ms" default:"1000"`
	// DeferUnloadedWorlds keeps persisted rows of worlds that are not loaded at
	// startup and restores them when the world loads.
	DeferUnloadedWorlds bool `mapstructure:"defer_unloaded_worlds" default:"false"`
}

// TypeConfig is the human-authored definition of one generator type.
type TypeConfig struct {
	// Blocks lists candidate material names, in order.
	Blocks []string `mapstructure:"blocks" yaml:"blocks"`
}

// Interval returns the reconciliation interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BaseDelay returns the regeneration delay after a break.
func (c Config) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}

// BoostedDelay returns the regeneration delay when a booster is active.
func (c Config) BoostedDelay() time.Duration {
	return time.Duration(c.BoostedDelayMS) * time.Millisecond
}

// Durable reports whether the engine runs in durable mode.
func (c Config) Durable() bool {
	return c.Mode == ModeDurable
}

// Validate checks the settings for values the engine cannot run with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeDurable, ModeLightweight:
	default:
		return fmt.Errorf("generator mode must be %q or %q, got %q", ModeDurable, ModeLightweight, c.Mode)
	}
	if c.Marker == "" {
		return fmt.Errorf("generator marker material is required")
	}
	if c.Mode == ModeDurable && c.IntervalMS <= 0 {
		return fmt.Errorf("generator interval must be positive, got %dms", c.IntervalMS)
	}
	if c.BaseDelayMS < 0 || c.BoostedDelayMS < 0 {
		return fmt.Errorf("generator delays must not be negative")
	}
	if c.BoosterRadius < 0 {
		return fmt.Errorf("booster radius must not be negative")
	}
	return nil
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeDurable,
		Marker:         "SEA_LANTERN",
		Booster:        "BEACON",
		BoosterRadius:  2,
		IntervalMS:     100,
		BaseDelayMS:    50,
		BoostedDelayMS: 1000,
	}
}
