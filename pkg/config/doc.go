// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with `env` and `envDefault`
// tags understood by github.com/caarlos0/env. Load parses a struct type once
// and caches the result, so every component that asks for the same type sees
// the same values. A ".env" file in the working directory is applied before
// the first parse through github.com/joho/godotenv; LoadEnv applies other
// files explicitly.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parse failures wrap ErrParsingConfig and can be checked with errors.Is.
package config
