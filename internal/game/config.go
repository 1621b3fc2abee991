package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, loaded from the environment.
type Config struct {
	// TickRate is the simulation frequency in frames per second.
	TickRate int `env:"TACTICALTWO_TICK_RATE" envDefault:"30"`
	// WalkSpeed is the player's horizontal speed in world units per second.
	WalkSpeed float64 `env:"TACTICALTWO_WALK_SPEED" envDefault:"150"`
	// SavePath is the SQLite save database location.
	SavePath string `env:"TACTICALTWO_SAVE_PATH" envDefault:"tacticaltwo.db"`
	// HoldTicks is how many ticks a movement key stays held after a press;
	// terminals report presses but not releases.
	HoldTicks int `env:"TACTICALTWO_HOLD_TICKS" envDefault:"6"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("tick rate must be positive, got %d", cfg.TickRate)
	}
	if cfg.WalkSpeed <= 0 {
		return cfg, fmt.Errorf("walk speed must be positive, got %v", cfg.WalkSpeed)
	}
	return cfg, nil
}
