package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/AlexPlatt23/rulekit/pkg/game"
)

var ErrParsingConfig = errors.New("failed to parse config")

// Config is read from GAMECHECK_* environment variables and an optional .env file.
type Config struct {
	MaxNameLength int  `env:"MAX_NAME_LENGTH" envDefault:"60"`
	YearAfter     int  `env:"YEAR_AFTER" envDefault:"1970"`
	YearBefore    int  `env:"YEAR_BEFORE" envDefault:"2023"`
	FixDirector   bool `env:"FIX_DIRECTOR" envDefault:"true"`
	Workers       int  `env:"WORKERS" envDefault:"4"`
	Debug         bool `env:"DEBUG" envDefault:"false"`
}

func loadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: "GAMECHECK_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.YearAfter >= cfg.YearBefore {
		return Config{}, fmt.Errorf("%w: YEAR_AFTER %d must be below YEAR_BEFORE %d",
			ErrParsingConfig, cfg.YearAfter, cfg.YearBefore)
	}
	return cfg, nil
}

// loadDotEnv loads .env if present; a missing file is not an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

func (c Config) Rules() game.Config {
	return game.Config{
		MaxNameLength: c.MaxNameLength,
		YearAfter:     c.YearAfter,
		YearBefore:    c.YearBefore,
		FixDirector:   c.FixDirector,
	}
}
