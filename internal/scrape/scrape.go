// Package scrape runs the two page pipelines: the a..z word index and the
// clw1..clw4 lost word lists. Pages are fetched one at a time in a fixed
// order.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lexiscrape/internal/decode"
	"github.com/hyperifyio/lexiscrape/internal/extract"
	"github.com/hyperifyio/lexiscrape/internal/fetch"
)

// DefaultBaseURL is the site root both page sets live under.
const DefaultBaseURL = "https://phrontistery.info"

// lostWordPages is the number of clw{n}.html pages.
const lostWordPages = 4

// Fetcher returns the body of a 2xx response. A non-success status must be
// reported as *fetch.StatusError; any other error aborts the run.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Scraper holds the collaborators shared by both modes.
type Scraper struct {
	Fetcher Fetcher
	// Decoder defaults to Windows-1252 when nil.
	Decoder *decode.Decoder
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string
}

// Result is the output of one mode.
type Result[T any] struct {
	Records []T
	// Failed lists pages that answered with a non-success status.
	Failed []string
}

// WordPageURLs returns the 26 index pages in letter order.
func WordPageURLs(base string) []string {
	base = trimBase(base)
	urls := make([]string, 0, 26)
	for letter := 'a'; letter <= 'z'; letter++ {
		urls = append(urls, fmt.Sprintf("%s/%c.html", base, letter))
	}
	return urls
}

// LostWordPageURLs returns clw1.html through clw4.html.
func LostWordPageURLs(base string) []string {
	base = trimBase(base)
	urls := make([]string, 0, lostWordPages)
	for i := 1; i <= lostWordPages; i++ {
		urls = append(urls, fmt.Sprintf("%s/clw%d.html", base, i))
	}
	return urls
}

// AllWords scrapes every alphabetic index page.
func (s *Scraper) AllWords(ctx context.Context) (Result[extract.WordEntry], error) {
	return scrapePages[extract.WordEntry](ctx, s, WordPageURLs(s.BaseURL), extract.WordsExtractor{})
}

// LostWords scrapes the lost word pages.
func (s *Scraper) LostWords(ctx context.Context) (Result[extract.LostWordEntry], error) {
	return scrapePages[extract.LostWordEntry](ctx, s, LostWordPageURLs(s.BaseURL), extract.LostWordsExtractor{})
}

func scrapePages[T any](ctx context.Context, s *Scraper, urls []string, ex extract.Extractor[T]) (Result[T], error) {
	var res Result[T]
	if s.Fetcher == nil {
		return res, errors.New("scrape: no fetcher configured")
	}
	dec := s.Decoder
	if dec == nil {
		dec = decode.Windows1252()
	}
	for _, u := range urls {
		log.Info().Str("url", u).Msg("scraping")
		body, err := s.Fetcher.Get(ctx, u)
		if err != nil {
			if se, ok := fetch.AsStatus(err); ok {
				log.Error().Str("url", u).Int("status", se.Status).Msg("failed to retrieve")
				res.Failed = append(res.Failed, u)
				continue
			}
			return res, fmt.Errorf("fetch %s: %w", u, err)
		}
		text, err := dec.Decode(body)
		if err != nil {
			return res, fmt.Errorf("%s: %w", u, err)
		}
		doc, err := extract.Parse(text)
		if err != nil {
			return res, fmt.Errorf("%s: %w", u, err)
		}
		records := ex.Extract(doc)
		log.Debug().Str("url", u).Int("records", len(records)).Msg("page extracted")
		res.Records = append(res.Records, records...)
	}
	return res, nil
}

func trimBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}
