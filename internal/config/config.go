package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken   string `env:"BOT_TOKEN,required"`
	APIBaseURL string `env:"CARMATCH_API_URL" envDefault:"http://localhost:8000/api/v1"`

	// Backend account the bot talks to CarMatch with
	APIEmail    string `env:"CARMATCH_EMAIL,required"`
	APIPassword string `env:"CARMATCH_PASSWORD,required"`

	// Register the account on first run if login fails
	AutoRegister bool `env:"CARMATCH_AUTO_REGISTER" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
