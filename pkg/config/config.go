package config

import "os"

type Config struct {
	AppEnv   string
	LogLevel string

	// RedisURL, when set, switches the session store from process memory to
	// Redis.
	RedisURL string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		RedisURL: getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
