// Package config loads the host binary's configuration: defaults, then an
// optional JSON file, then environment overrides (with .env support).
package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string `json:"addr"`
	BackendURL string `json:"backend_url"`
	DataDir    string `json:"data_dir"`
	LogLevel   string `json:"log_level"`
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads path when it exists and applies VANTURA_* environment
// overrides on top. A missing config file is not an error.
func Load(path string) Config {
	godotenv.Load()

	cfg := Config{
		Addr:       ":3000",
		BackendURL: "http://localhost:8080",
		DataDir:    "data",
		LogLevel:   "info",
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		json.NewDecoder(f).Decode(&cfg)
	}

	cfg.Addr = getEnv("VANTURA_ADDR", cfg.Addr)
	cfg.BackendURL = getEnv("VANTURA_BACKEND_URL", cfg.BackendURL)
	cfg.DataDir = getEnv("VANTURA_DATA_DIR", cfg.DataDir)
	cfg.LogLevel = getEnv("VANTURA_LOG_LEVEL", cfg.LogLevel)

	return cfg
}
