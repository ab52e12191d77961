package config

import "log"

// MustNonEmpty stops startup when a required setting is absent, so a
// missing DATABASE_URL or API key fails fast instead of surfacing later
// as a runtime error.
func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("%s must be set (env or config.env)", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("%s must be set (env or config.env)", envName)
	}
}
