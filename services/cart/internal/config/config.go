package config

import (
	pkgcfg "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName string
	Port        string
	CatalogURL  string
}

func Load() *Config {
	return &Config{
		ServiceName: "cart",
		Port:        pkgcfg.EnvDefault("CART_PORT", "8005"),
		CatalogURL:  pkgcfg.EnvDefault("CATALOG_SERVICE_URL", "http://127.0.0.1:8000"),
	}
}
