package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	Data    DataConfig    `toml:"data"`
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxDelta time.Duration `toml:"max_delta"` // longest step fed to the simulation after a stall
	Seed     int64         `toml:"seed"`      // 0 = seed from the clock
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal is taken by the renderer
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	SampleRate   int     `toml:"sample_rate"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
}

type DataConfig struct {
	Weapons string `toml:"weapons"`
	Insults string `toml:"insults"`
	Scripts string `toml:"scripts"`
	Watch   bool   `toml:"watch"`
}

// Load reads path over the compiled defaults. An empty path yields the
// defaults alone.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %s", c.Game.TickRate)
	}
	if c.Game.MaxDelta < c.Game.TickRate {
		return fmt.Errorf("game.max_delta %s is shorter than tick_rate %s", c.Game.MaxDelta, c.Game.TickRate)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume %.2f out of range 0-1", c.Audio.MasterVolume)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			TickRate: 16 * time.Millisecond,
			MaxDelta: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "rudearena.log",
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
		Data: DataConfig{
			Weapons: "data/yaml/weapons.yaml",
			Insults: "data/yaml/insults.yaml",
			Scripts: "scripts",
			Watch:   true,
		},
	}
}
