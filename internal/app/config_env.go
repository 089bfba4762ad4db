package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath {
		if v := os.Getenv("LEXISCRAPE_OUTPUT"); v != "" {
			cfg.OutputPath = v
		}
	}
	if cfg.BaseURL == "" || cfg.BaseURL == DefaultBaseURL {
		if v := os.Getenv("LEXISCRAPE_BASE_URL"); v != "" {
			cfg.BaseURL = v
		}
	}
	if cfg.Encoding == "" || cfg.Encoding == DefaultEncoding {
		if v := os.Getenv("LEXISCRAPE_ENCODING"); v != "" {
			cfg.Encoding = v
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("LEXISCRAPE_USER_AGENT")
	}

	// Optional durations
	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("LEXISCRAPE_FETCH_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}

	// Booleans
	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				*dst = true
			}
		}
	}
	setBool(&cfg.ScrapeAllWords, "LEXISCRAPE_SCRAPE_ALL_WORDS")
	setBool(&cfg.ScrapeLostWords, "LEXISCRAPE_SCRAPE_LOST_WORDS")
	setBool(&cfg.Verbose, "VERBOSE")
}
