package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lexiscrape/internal/decode"
	"github.com/hyperifyio/lexiscrape/internal/extract"
	"github.com/hyperifyio/lexiscrape/internal/fetch"
	"github.com/hyperifyio/lexiscrape/internal/output"
	"github.com/hyperifyio/lexiscrape/internal/scrape"
)

type App struct {
	cfg     Config
	scraper *scrape.Scraper
}

// Summary describes what a run produced.
type Summary struct {
	AllWords    int
	LostWords   int
	FailedPages []string
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	dec, err := decode.New(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	client := &fetch.Client{
		HTTPClient:        newHTTPClient(),
		UserAgent:         cfg.UserAgent,
		PerRequestTimeout: cfg.FetchTimeout,
	}
	log.Debug().
		Str("base", cfg.BaseURL).
		Str("encoding", dec.Name()).
		Bool("allWords", cfg.ScrapeAllWords).
		Bool("lostWords", cfg.ScrapeLostWords).
		Msg("configured")
	return &App{
		cfg: cfg,
		scraper: &scrape.Scraper{
			Fetcher: client,
			Decoder: dec,
			BaseURL: cfg.BaseURL,
		},
	}, nil
}

// Run scrapes the enabled modes in order (all words, then lost words) and
// writes both lists to the output file. A transport failure returns before
// anything is written.
func (a *App) Run(ctx context.Context) (Summary, error) {
	var (
		sum   Summary
		words []extract.WordEntry
		lost  []extract.LostWordEntry
	)

	if a.cfg.ScrapeAllWords {
		res, err := a.scraper.AllWords(ctx)
		if err != nil {
			return sum, fmt.Errorf("scrape all words: %w", err)
		}
		words = res.Records
		sum.FailedPages = append(sum.FailedPages, res.Failed...)
	}

	if a.cfg.ScrapeLostWords {
		res, err := a.scraper.LostWords(ctx)
		if err != nil {
			return sum, fmt.Errorf("scrape lost words: %w", err)
		}
		lost = res.Records
		sum.FailedPages = append(sum.FailedPages, res.Failed...)
	}

	sum.AllWords = len(words)
	sum.LostWords = len(lost)
	if err := output.Write(a.cfg.OutputPath, output.NewDocument(words, lost)); err != nil {
		return sum, err
	}
	log.Info().
		Str("path", a.cfg.OutputPath).
		Int("allWords", sum.AllWords).
		Int("lostWords", sum.LostWords).
		Int("failedPages", len(sum.FailedPages)).
		Msg("data saved")
	return sum, nil
}
