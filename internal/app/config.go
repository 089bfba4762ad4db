package app

import (
	"time"

	"github.com/hyperifyio/lexiscrape/internal/decode"
	"github.com/hyperifyio/lexiscrape/internal/output"
	"github.com/hyperifyio/lexiscrape/internal/scrape"
)

// Defaults shared by flag registration and the env/file overlays, which only
// fill fields still holding these values.
const (
	DefaultOutputPath = output.DefaultPath
	DefaultBaseURL    = scrape.DefaultBaseURL
	DefaultEncoding   = decode.DefaultEncoding
)

// Config holds runtime configuration for the application.
type Config struct {
	OutputPath string

	// Modes
	ScrapeAllWords  bool
	ScrapeLostWords bool

	// Site
	BaseURL  string
	Encoding string

	// HTTP
	UserAgent    string
	FetchTimeout time.Duration

	Verbose bool
}

// DefaultConfig returns a Config with every default applied and no mode
// enabled.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		BaseURL:    DefaultBaseURL,
		Encoding:   DefaultEncoding,
	}
}
