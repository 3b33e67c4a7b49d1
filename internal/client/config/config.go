// Package config loads runtime settings for the EduZo CLI from, in order of
// increasing precedence: built-in defaults, a .env file / environment
// variables, a JSON config file (-c/-config), and command-line flags.
package config

import "time"

// Config holds runtime settings for the EduZo CLI.
//
// The three base URLs are separate because the backend, the AI tutor, and
// the analytics logger are separate service origins.
type Config struct {
	PortfolioAPIURL string
	AIAPIURL        string
	AnalyticsAPIURL string
	RequestTimeout  time.Duration
	StorePath       string
}

// LoadDefaults populates c with the local development topology.
func (c *Config) LoadDefaults() {
	c.PortfolioAPIURL = "http://localhost:8000"
	c.AIAPIURL = "http://localhost:8001"
	c.AnalyticsAPIURL = "http://localhost:8002"
	c.RequestTimeout = 10 * time.Second
	c.StorePath = "eduzo.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
