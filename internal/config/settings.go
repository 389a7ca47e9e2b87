package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are CLI options read from the environment.
type Settings struct {
	LogMode string `env:"MICROMAG_LOG_MODE" envDefault:"dev"`
	NoColor bool   `env:"MICROMAG_NO_COLOR"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
