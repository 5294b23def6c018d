package main

import (
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the CLI's environment-driven configuration, parsed with
// caarlos0/env the way the pack's Semafind-semadb config.Cfg is, prefixed
// DENGRAPH_ so it never collides with a host process's own environment.
type Config struct {
	ClusterDistance float64 `env:"CLUSTER_DISTANCE" envDefault:"5"`
	CoreNeighbours  int     `env:"CORE_NEIGHBOURS" envDefault:"5"`
	Symmetric       bool    `env:"SYMMETRIC" envDefault:"true"`
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"info"`
}

// loadConfig loads a .env file if present (ignoring its absence, mirroring
// the pack's duynguyendang-gca main.go _ = godotenv.Load() pattern) then
// parses the environment into a Config.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	opts := env.Options{Prefix: "DENGRAPH_"}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, err
	}

	log.Debug().Interface("config", cfg).Msg("loaded configuration")

	return cfg, nil
}
