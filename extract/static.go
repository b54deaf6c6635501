package extract

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/news"
)

// StaticStrategy is the no-browser web path: a plain HTTP fetch and a
// goquery walk over the same selector, denylist, and link resolution as
// the browser path. Suitable for sites that render server-side.
type StaticStrategy struct {
	Client      *http.Client
	UserAgent   string
	Boilerplate []string
	Logger      zerolog.Logger
}

// NewStaticStrategy creates a static strategy with a 10 second fetch
// timeout and the built-in boilerplate denylist.
func NewStaticStrategy(logger zerolog.Logger) *StaticStrategy {
	return &StaticStrategy{
		Client:      &http.Client{Timeout: 10 * time.Second},
		UserAgent:   "newswatch/1.0 (change-monitoring scraper)",
		Boilerplate: Boilerplate,
		Logger:      logger,
	}
}

// Extract fetches the target over HTTP and scans the parsed document. The
// session argument is unused; it exists so static and browser web paths
// are interchangeable behind Strategy.
func (s *StaticStrategy) Extract(_ browse.Session, target Target) ([]news.Candidate, error) {
	if target.Selector == "" {
		return nil, ErrNoSelector
	}
	doc, err := s.fetch(target.URL)
	if err != nil {
		return nil, &Error{Reason: "fetch failed", Err: err}
	}

	var candidates []news.Candidate
	doc.Find(target.Selector).Each(func(_ int, sel *goquery.Selection) {
		title := news.NormalizeTitle(sel.Text())
		if title == "" || isBoilerplate(title, s.Boilerplate) {
			return
		}
		href, _ := sel.Attr("href")
		if href == "" {
			href, _ = sel.Closest("a").Attr("href")
		}
		if href == "" {
			href, _ = sel.Find("a").First().Attr("href")
		}
		candidates = append(candidates, news.Candidate{
			Title:     title,
			Link:      ResolveLink(target.URL, href, title),
			SourceURL: target.URL,
		})
	})

	s.Logger.Debug().
		Str("url", target.URL).
		Int("candidates", len(candidates)).
		Msg("static extraction done")
	return candidates, nil
}

func (s *StaticStrategy) fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
