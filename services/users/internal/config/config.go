package config

import (
	pkgconfig "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName string
	Port        string
}

func Load() Config {
	return Config{
		ServiceName: "users",
		Port:        pkgconfig.EnvDefault("USERS_PORT", "8011"),
	}
}
