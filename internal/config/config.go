package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Effects  EffectsConfig
	Snapshot SnapshotConfig
}

// DiscordConfig holds the optional debug surface configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// Enabled reports whether the Discord debug surface should be started
func (c DiscordConfig) Enabled() bool {
	return c.Token != "" && c.AppID != ""
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Empty means in-memory snapshots
}

// EffectsConfig holds effect engine configuration
type EffectsConfig struct {
	CatalogPath        string // Empty means the embedded default catalog
	AnimationNamespace string
	TickRate           int // Wall-clock ticks per second for the run loop
}

// SnapshotConfig controls how often effect state is written to the snapshot store
type SnapshotConfig struct {
	IntervalTicks int
	TTL           time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	ttl, err := getEnvAsDurationOrDefault("SNAPSHOT_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Effects: EffectsConfig{
			CatalogPath:        os.Getenv("EFFECTS_CATALOG"),
			AnimationNamespace: getEnvOrDefault("ANIMATION_NAMESPACE", "sb_th"),
			TickRate:           getEnvAsIntOrDefault("TICK_RATE", 20),
		},
		Snapshot: SnapshotConfig{
			IntervalTicks: getEnvAsIntOrDefault("SNAPSHOT_INTERVAL_TICKS", 100),
			TTL:           ttl,
		},
	}

	// Validate
	if cfg.Effects.TickRate <= 0 {
		return nil, fmt.Errorf("TICK_RATE must be positive, got %d", cfg.Effects.TickRate)
	}
	if cfg.Snapshot.IntervalTicks <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_INTERVAL_TICKS must be positive, got %d", cfg.Snapshot.IntervalTicks)
	}
	if cfg.Discord.Token != "" && cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
