// Package config loads typed configuration structs from environment
// variables, with a .env file picked up automatically when present.
//
// Load parses a struct based on caarlos0/env field tags and caches the
// result per type, so every component that asks for the same config
// type sees the same values without re-reading the environment:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
package config
