// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string   // HTTP listen address
	LogLevel  string   // zap level: debug | info | warn | error
	WSOrigins []string // origin patterns allowed to open websockets
}

// Load layers defaults under environment variables. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	// WS_ORIGINS is a comma-separated list of host patterns, e.g.
	// "game.example.com,*.example.org". Empty means same-origin only.
	if v := os.Getenv("WS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.WSOrigins = append(cfg.WSOrigins, o)
			}
		}
	}
	return cfg
}
