package config

import "os"

type Config struct {
	Port     string
	Env      string
	ModelDir string
}

func Load() Config {
	return Config{
		Port:     getEnv("PORT", "5000"),
		Env:      getEnv("ENV", "development"),
		ModelDir: getEnv("MODEL_DIR", "model"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
