package config

import (
	"flag"
	"os"
	"time"

	"github.com/ArjunBora/Eduzo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    portfolio/auth backend base URL
//	-ai string   AI tutor service base URL
//	-an string   analytics service base URL
//	-s string    path of the local sqlite store
//	-t int       request timeout in seconds
//
// Only these flags are parsed here; os.Args is pre-filtered with
// flagx.FilterArgs so other components' flags don't interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-ai", "-an", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.PortfolioAPIURL, "a", cfg.PortfolioAPIURL, "portfolio/auth backend base URL")
	fs.StringVar(&cfg.AIAPIURL, "ai", cfg.AIAPIURL, "AI tutor service base URL")
	fs.StringVar(&cfg.AnalyticsAPIURL, "an", cfg.AnalyticsAPIURL, "analytics service base URL")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
