package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/config"
	"github.com/pevans/newswatch/extract"
	"github.com/pevans/newswatch/monitor"
	"github.com/pevans/newswatch/news"
	"github.com/pevans/newswatch/targets"
)

func handleRun(storePath, targetsPath string, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	mode := fs.String("source", "web", "target kind: web, twitter, or mixed")
	name := fs.String("name", "", "source name stored on each record (required)")
	urls := fs.String("url", "", "comma-separated target URLs (default: saved targets for -name)")
	selector := fs.String("selector", "", "explicit CSS selector for web targets")
	static := fs.Bool("static", false, "fetch web targets over plain HTTP instead of the browser")
	configPath := fs.String("config", "", "path to config file (default: ~/.newswatch/config.yaml)")
	storeFlag := fs.String("store", storePath, "path to the news store file")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	fs.Parse(args)

	logger := newLogger(*verbose)

	// Configuration errors are fatal before any network activity begins.
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		os.Exit(1)
	}
	runMode := monitor.Mode(*mode)
	if !monitor.ValidMode(runMode) {
		fmt.Fprintf(os.Stderr, "Error: invalid -source %q (must be web, twitter, or mixed)\n", *mode)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	targetURLs := splitURLs(*urls)
	if len(targetURLs) == 0 {
		targetURLs = savedTargetURLs(targetsPath, *name)
		if len(targetURLs) == 0 {
			fmt.Fprintf(os.Stderr, "Error: -url is required (no saved targets for %q)\n", *name)
			os.Exit(1)
		}
		logger.Info().Int("targets", len(targetURLs)).Str("name", *name).Msg("using saved targets")
	}

	opts := monitor.Options{
		Mode:     runMode,
		Source:   *name,
		Selector: *selector,
		Static:   *static,
	}
	if cfg != nil {
		opts.Attempts = cfg.Attempts
		opts.RetryDelay = cfg.RetryDelayOr(0)
		opts.TargetDelay = cfg.TargetDelayOr(0)
		opts.Boilerplate = cfg.Boilerplate
		if len(cfg.Selectors) > 0 {
			opts.Selectors = mergedSelectors(cfg.Selectors)
		}
	}

	// The browser is only needed when some target may take a browser path.
	var session browse.Session
	var rodSession *browse.RodSession
	if !*static || runMode != monitor.ModeWeb {
		rodSession, err = browse.NewRodSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		session = rodSession
	}

	m := monitor.New(news.NewStore(*storeFlag), session, opts, logger)
	summary, runErr := m.Run(targetURLs)
	if rodSession != nil {
		rodSession.Close()
	}

	if summary != nil {
		printSummary(summary)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func splitURLs(s string) []string {
	var urls []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// savedTargetURLs loads the watch list for a monitor name. An absent or
// empty watch list just means the caller must pass -url.
func savedTargetURLs(targetsPath, name string) []string {
	store, err := targets.NewStore(targetsPath)
	if err != nil {
		return nil
	}
	defer store.Close()

	saved, err := store.List(name)
	if err != nil {
		return nil
	}
	urls := make([]string, 0, len(saved))
	for _, t := range saved {
		urls = append(urls, t.URL)
	}
	return urls
}

// mergedSelectors overlays config-file entries on the built-in table.
func mergedSelectors(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(extract.DefaultSelectors)+len(overrides))
	for domain, sel := range extract.DefaultSelectors {
		merged[domain] = sel
	}
	for domain, sel := range overrides {
		merged[domain] = sel
	}
	return merged
}

func printSummary(s *monitor.Summary) {
	fmt.Println()
	fmt.Println("Run completed:")
	fmt.Printf("  Targets processed: %d\n", len(s.Outcomes))
	fmt.Printf("  Candidates found:  %d\n", s.Found)
	fmt.Printf("  New records:       %d\n", s.Added)
	fmt.Printf("  Duplicates:        %d\n", s.Duplicates)
	if !s.Wrote {
		fmt.Println("  Store not modified")
	}

	var problems []monitor.Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil || o.MissingSelector {
			problems = append(problems, o)
		}
	}
	if len(problems) > 0 {
		fmt.Println()
		fmt.Println("Target problems:")
		for _, o := range problems {
			if o.MissingSelector {
				fmt.Printf("  [%s] %s: no selector configured\n", o.Kind, o.URL)
			} else {
				fmt.Printf("  [%s] %s: %v\n", o.Kind, o.URL, o.Err)
			}
		}
	}
}
