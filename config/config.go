package config

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Rules are the simulation constants. Durations are in milliseconds of simulated time.
type Rules struct {
	TickMs            int   `yaml:"tick_ms"`
	BombTimeoutMs     int   `yaml:"bomb_timeout_ms"`
	FireballBurnoutMs int   `yaml:"fireball_burnout_ms"`
	TeleporterDelayMs int   `yaml:"teleporter_delay_ms"`
	GhostMemory       int   `yaml:"ghost_memory"`
	InitialBombs      int   `yaml:"initial_bombs"`
	Seed              int64 `yaml:"seed"`
}

// Display configures presentation only. Traits never read it.
type Display struct {
	TileSize      int    `yaml:"tile_size"`
	FramesPerTick int    `yaml:"frames_per_tick"`
	SpriteSheet   string `yaml:"sprite_sheet"`
	LevelPath     string `yaml:"level_path"`
	MetricsFile   string `yaml:"metrics_file"`
}

type Config struct {
	Rules   Rules   `yaml:"rules"`
	Display Display `yaml:"display"`
}

func Default() Config {
	return Config{
		Rules: Rules{
			TickMs:            100,
			BombTimeoutMs:     2000,
			FireballBurnoutMs: 1000,
			TeleporterDelayMs: 1500,
			GhostMemory:       20,
			InitialBombs:      3,
		},
		Display: Display{
			TileSize:      32,
			FramesPerTick: 4,
		},
	}
}

// Load overlays the YAML file at path on Default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	log.WithFields(log.Fields{
		"path":    path,
		"tick_ms": cfg.Rules.TickMs,
		"seed":    cfg.Rules.Seed,
	}).Info("config loaded")
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Rules.TickMs <= 0:
		return errors.Errorf("tick_ms must be positive, got %d", c.Rules.TickMs)
	case c.Rules.GhostMemory <= 0:
		return errors.Errorf("ghost_memory must be positive, got %d", c.Rules.GhostMemory)
	case c.Rules.InitialBombs < 0:
		return errors.Errorf("initial_bombs must not be negative, got %d", c.Rules.InitialBombs)
	case c.Display.FramesPerTick <= 0:
		return errors.Errorf("frames_per_tick must be positive, got %d", c.Display.FramesPerTick)
	}
	return nil
}
