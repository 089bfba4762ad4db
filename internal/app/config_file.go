package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/lexiscrape/internal/decode"
)

// FileConfig represents the single-file configuration schema.
// Nested sections mirror the dotted flag names.
type FileConfig struct {
	Output  string `yaml:"output" json:"output"`
	Verbose bool   `yaml:"verbose" json:"verbose"`

	Scrape struct {
		AllWords  bool `yaml:"allWords" json:"allWords"`
		LostWords bool `yaml:"lostWords" json:"lostWords"`
	} `yaml:"scrape" json:"scrape"`

	Base struct {
		URL string `yaml:"url" json:"url"`
	} `yaml:"base" json:"base"`

	Encoding string `yaml:"encoding" json:"encoding"`

	Fetch struct {
		UA      string        `yaml:"ua" json:"ua"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"fetch" json:"fetch"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default. Flags and env have
// already been applied; the file only supplies what they left open.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if !cfg.ScrapeAllWords && fc.Scrape.AllWords {
		cfg.ScrapeAllWords = true
	}
	if !cfg.ScrapeLostWords && fc.Scrape.LostWords {
		cfg.ScrapeLostWords = true
	}
	if (cfg.BaseURL == "" || cfg.BaseURL == DefaultBaseURL) && fc.Base.URL != "" {
		cfg.BaseURL = fc.Base.URL
	}
	if (cfg.Encoding == "" || cfg.Encoding == DefaultEncoding) && fc.Encoding != "" {
		cfg.Encoding = fc.Encoding
	}
	if cfg.UserAgent == "" && fc.Fetch.UA != "" {
		cfg.UserAgent = fc.Fetch.UA
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return errors.New("config: base.url is required")
	}
	if cfg.FetchTimeout < 0 {
		return errors.New("config: negative fetch.timeout is not allowed")
	}
	if _, err := decode.New(cfg.Encoding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
