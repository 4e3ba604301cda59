// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with `env` and `envDefault` tags (github.com/caarlos0/env/v11).
// A `.env` file in the working directory is loaded once on first use
// (github.com/joho/godotenv); variables already present in the environment win.
//
// Example:
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
package config
