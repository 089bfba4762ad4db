package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lexiscrape/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	opts := parseFlags(os.Args[1:])
	if opts.showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if err := app.LoadEnvFiles(app.SplitList(opts.envFiles)...); err != nil {
		log.Error().Err(err).Msg("load env files")
		os.Exit(1)
	}
	resolved, err := resolveConfig(opts)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if resolved.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, resolved); err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}

// cliOptions is the parsed command line. set holds the names of flags given
// explicitly so env and file values cannot override them.
type cliOptions struct {
	cfg         app.Config
	configPath  string
	envFiles    string
	showVersion bool
	set         map[string]bool
}

func parseFlags(args []string) cliOptions {
	fs := flag.NewFlagSet("lexiscrape", flag.ExitOnError)
	opts := cliOptions{cfg: app.DefaultConfig(), set: map[string]bool{}}
	cfg := &opts.cfg

	fs.BoolVar(&cfg.ScrapeAllWords, flagAllWords, false, "Scrape the a-z word index pages")
	fs.BoolVar(&cfg.ScrapeLostWords, flagLostWords, false, "Scrape the lost words pages (clw1-clw4)")
	fs.StringVar(&cfg.OutputPath, "output", app.DefaultOutputPath, "Path to write the JSON output")
	fs.StringVar(&cfg.BaseURL, "base.url", app.DefaultBaseURL, "Site root the page sets are fetched from")
	fs.StringVar(&cfg.Encoding, "encoding", app.DefaultEncoding, "Character encoding of the fetched pages")
	fs.DurationVar(&cfg.FetchTimeout, "fetch.timeout", 0, "Per-request timeout (e.g. 30s); 0 leaves it to the HTTP client")
	fs.StringVar(&cfg.UserAgent, "fetch.ua", "", "User-Agent header; empty sends the Go default")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	fs.StringVar(&opts.configPath, "config", os.Getenv("LEXISCRAPE_CONFIG"), "Path to YAML or JSON config file")
	fs.StringVar(&opts.envFiles, "env", ".env", "Comma-separated dotenv files to load (missing files are ignored)")
	fs.BoolVar(&opts.showVersion, "version", false, "Print build information and exit")
	_ = fs.Parse(args)

	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	// flag stops at the first positional argument; mode switches after it
	// still count.
	for _, a := range fs.Args() {
		if !strings.HasPrefix(a, "-") {
			continue
		}
		switch strings.TrimLeft(a, "-") {
		case flagAllWords:
			cfg.ScrapeAllWords = true
			opts.set[flagAllWords] = true
		case flagLostWords:
			cfg.ScrapeLostWords = true
			opts.set[flagLostWords] = true
		}
	}
	return opts
}

const (
	flagAllWords  = "scrape-all-words"
	flagLostWords = "scrape-lost-words"
)

// resolveConfig layers env and the optional config file beneath the parsed
// flags, then validates the result.
func resolveConfig(opts cliOptions) (app.Config, error) {
	cfg := opts.cfg
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(opts.configPath) != "" {
		fc, err := app.LoadConfigFile(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", opts.configPath, err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	pinExplicitFlags(&cfg, opts)
	if err := app.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// pinExplicitFlags restores every flag the user set on the command line,
// including ones set to their default value.
func pinExplicitFlags(cfg *app.Config, opts cliOptions) {
	for name := range opts.set {
		switch name {
		case flagAllWords:
			cfg.ScrapeAllWords = opts.cfg.ScrapeAllWords
		case flagLostWords:
			cfg.ScrapeLostWords = opts.cfg.ScrapeLostWords
		case "output":
			cfg.OutputPath = opts.cfg.OutputPath
		case "base.url":
			cfg.BaseURL = opts.cfg.BaseURL
		case "encoding":
			cfg.Encoding = opts.cfg.Encoding
		case "fetch.timeout":
			cfg.FetchTimeout = opts.cfg.FetchTimeout
		case "fetch.ua":
			cfg.UserAgent = opts.cfg.UserAgent
		case "v":
			cfg.Verbose = opts.cfg.Verbose
		}
	}
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	_, err = a.Run(ctx)
	return err
}
