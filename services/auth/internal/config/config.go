package config

import (
	"os"
	"time"

	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName  string
	Port         string
	DatabaseURL  string
	JWTSecret    []byte
	TokenTTL     time.Duration
	KafkaBrokers []string
}

func Load() *Config {
	cfg := &Config{
		ServiceName:  "auth",
		Port:         pkgcfg.EnvDefault("AUTH_PORT", "8001"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(os.Getenv("SECRET_KEY")),
		TokenTTL:     time.Duration(pkgcfg.EnvIntDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		KafkaBrokers: pkgcfg.CSV(os.Getenv("KAFKA_BROKERS")),
	}
	pkgcfg.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	pkgcfg.MustNonEmptyBytes(cfg.JWTSecret, "SECRET_KEY")
	return cfg
}
