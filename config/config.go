package config

import (
	"os"
	"strings"
)

// Config carries the startup parameters the core treats as opaque: where the
// file store lives, how to reach the relational store, and the token key.
type Config struct {
	Port         string
	ResourcesDir string
	TokenKey     string
	HotelEmail   string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func Load() *Config {
	return &Config{
		Port:         envOrDefault("PORT", "8080"),
		ResourcesDir: envOrDefault("RESOURCES_DIR", "resources"),
		TokenKey:     strings.TrimSpace(os.Getenv("TOKEN_KEY")),
		HotelEmail:   envOrDefault("HOTEL_EMAIL", "reception@room-reservations.local"),
	}
}
