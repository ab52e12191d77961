package config

import (
	"os"

	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName string
	Port        string
	DatabaseURL string
}

func Load() *Config {
	cfg := &Config{
		ServiceName: "prompts",
		Port:        pkgcfg.EnvDefault("PROMPTS_PORT", "8007"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	pkgcfg.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	return cfg
}
