package config

import (
	"encoding/json"
	"os"

	"github.com/ArjunBora/Eduzo/internal/flagx"
	"github.com/ArjunBora/Eduzo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be written either as strings like "10s" or as integer nanoseconds.
type JsonConfig struct {
	PortfolioAPIURL string         `json:"api_url"`
	AIAPIURL        string         `json:"ai_api_url"`
	AnalyticsAPIURL string         `json:"analytics_api_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	StorePath       string         `json:"store_path"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// -c/-config. Absent flag means no JSON is loaded. Only fields present in
// the file override; zero values are skipped.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.PortfolioAPIURL != "" {
		cfg.PortfolioAPIURL = jc.PortfolioAPIURL
	}
	if jc.AIAPIURL != "" {
		cfg.AIAPIURL = jc.AIAPIURL
	}
	if jc.AnalyticsAPIURL != "" {
		cfg.AnalyticsAPIURL = jc.AnalyticsAPIURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
}
