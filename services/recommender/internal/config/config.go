package config

import (
	"os"
	"time"

	pkgconfig "github.com/Skotchmaster/vinyl_shop/pkg/config"
)

type Config struct {
	ServiceName string
	Port        string

	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	LLMTimeout        time.Duration

	CatalogServiceURL string
	PromptsServiceURL string

	RedisAddr       string
	RedisPassword   string
	RateLimit       int
	RateLimitWindow time.Duration
}

func Load() Config {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	pkgconfig.MustNonEmpty(apiKey, "OPENROUTER_API_KEY")

	return Config{
		ServiceName:       "recommender",
		Port:              pkgconfig.EnvDefault("RECOMMENDER_PORT", "8012"),
		OpenRouterAPIKey:  apiKey,
		OpenRouterBaseURL: pkgconfig.EnvDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMTimeout:        time.Duration(pkgconfig.EnvIntDefault("LLM_TIMEOUT_SECONDS", 90)) * time.Second,
		CatalogServiceURL: pkgconfig.EnvDefault("CATALOG_SERVICE_URL", "http://127.0.0.1:8000"),
		PromptsServiceURL: pkgconfig.EnvDefault("PROMPTS_SERVICE_URL", "http://127.0.0.1:8007"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RateLimit:         pkgconfig.EnvIntDefault("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitWindow:   time.Minute,
	}
}
