package config

import (
	"os"

	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName  string
	Port         string
	DatabaseURL  string
	KafkaBrokers []string
}

func Load() *Config {
	cfg := &Config{
		ServiceName:  "catalog",
		Port:         pkgcfg.EnvDefault("CATALOG_PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
	}
	pkgcfg.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	return cfg
}
