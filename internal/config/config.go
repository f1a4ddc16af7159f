// Package config reads all process configuration from the environment.
package config

import (
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Addr           string        `env:"STOREFRONT_ADDR,default=:3000"`
	BackendURL     string        `env:"BACKEND_URL,default=http://localhost:8080/api/v1.0"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT,default=15s"`
	JWTSecret      string        `env:"JWT_SECRET,default=dev-secret"`
	NotifyTTL      time.Duration `env:"NOTIFY_TTL,default=3s"`
	DefaultLocale  string        `env:"DEFAULT_LOCALE,default=vi"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
