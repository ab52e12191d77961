package config

import (
	"os"

	pkgconfig "github.com/Skotchmaster/vinyl_shop/pkg/config"
	"github.com/Skotchmaster/vinyl_shop/services/orders/internal/notify"
)

type Config struct {
	ServiceName string
	Port        string
	DatabaseURL string

	AuthServiceURL        string
	CatalogServiceURL     string
	RecommenderServiceURL string

	Email            notify.EmailConfig
	TelegramBotToken string
	TelegramChatID   string

	KafkaBrokers []string
}

func Load() Config {
	dbURL := os.Getenv("DATABASE_URL")
	pkgconfig.MustNonEmpty(dbURL, "DATABASE_URL")

	return Config{
		ServiceName:           "orders",
		Port:                  pkgconfig.EnvDefault("ORDERS_PORT", "8010"),
		DatabaseURL:           dbURL,
		AuthServiceURL:        pkgconfig.EnvDefault("AUTH_SERVICE_URL", "http://127.0.0.1:8001"),
		CatalogServiceURL:     pkgconfig.EnvDefault("CATALOG_SERVICE_URL", "http://127.0.0.1:8000"),
		RecommenderServiceURL: pkgconfig.EnvDefault("RECOMMENDER_SERVICE_URL", "http://127.0.0.1:8012"),
		Email: notify.EmailConfig{
			Host:     os.Getenv("SMTP_SERVER"),
			Port:     pkgconfig.EnvDefault("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			CopyTo:   os.Getenv("EMAIL_COPY_TO"),
		},
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		KafkaBrokers:     pkgconfig.CSV(os.Getenv("KAFKA_BROKERS")),
	}
}
