package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, after loading a .env
// file from the working directory when one exists. A missing .env is fine;
// explicit environment variables always win over the file because godotenv
// does not overwrite existing keys.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EDUZO_API_URL"); v != "" {
		cfg.PortfolioAPIURL = v
	}
	if v := os.Getenv("EDUZO_AI_API_URL"); v != "" {
		cfg.AIAPIURL = v
	}
	if v := os.Getenv("EDUZO_ANALYTICS_API_URL"); v != "" {
		cfg.AnalyticsAPIURL = v
	}
	if v := os.Getenv("EDUZO_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("EDUZO_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
