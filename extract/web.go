package extract

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/news"
)

// WebStrategy scans every element matching the target's selector and turns
// each one into a candidate, filtering out known boilerplate. Links are
// taken from the element itself, its nearest ancestor anchor, or its first
// descendant anchor, in that order.
type WebStrategy struct {
	NavigationTimeout time.Duration
	SelectorTimeout   time.Duration
	Boilerplate       []string
	Logger            zerolog.Logger
}

// NewWebStrategy creates a web strategy with default wait bounds and the
// built-in boilerplate denylist.
func NewWebStrategy(logger zerolog.Logger) *WebStrategy {
	return &WebStrategy{
		NavigationTimeout: DefaultNavigationTimeout,
		SelectorTimeout:   DefaultSelectorTimeout,
		Boilerplate:       Boilerplate,
		Logger:            logger,
	}
}

// Extract navigates to the target and enumerates its selector matches.
func (w *WebStrategy) Extract(session browse.Session, target Target) ([]news.Candidate, error) {
	if target.Selector == "" {
		return nil, ErrNoSelector
	}
	if err := session.Navigate(target.URL, w.NavigationTimeout); err != nil {
		return nil, &Error{Reason: "navigation failed", Err: err}
	}
	if err := session.WaitFor(target.Selector, w.SelectorTimeout); err != nil {
		return nil, &Error{Reason: "selector never appeared", Err: err}
	}
	elements, err := session.Elements(target.Selector)
	if err != nil {
		return nil, &Error{Reason: "element query failed", Err: err}
	}

	var candidates []news.Candidate
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			continue
		}
		title := news.NormalizeTitle(text)
		if title == "" || isBoilerplate(title, w.Boilerplate) {
			continue
		}
		link := ResolveLink(target.URL, elementHref(el), title)
		candidates = append(candidates, news.Candidate{
			Title:     title,
			Link:      link,
			SourceURL: target.URL,
		})
	}

	w.Logger.Debug().
		Str("url", target.URL).
		Str("selector", target.Selector).
		Int("candidates", len(candidates)).
		Msg("web extraction done")
	return candidates, nil
}

// elementHref looks for a link on the element itself, then the nearest
// ancestor anchor, then the first descendant anchor.
func elementHref(el browse.Element) string {
	if href := attr(el, "href"); href != "" {
		return href
	}
	if anchor, err := el.Closest("a"); err == nil && anchor != nil {
		if href := attr(anchor, "href"); href != "" {
			return href
		}
	}
	if anchor, err := el.First("a"); err == nil && anchor != nil {
		if href := attr(anchor, "href"); href != "" {
			return href
		}
	}
	return ""
}

func attr(el browse.Element, name string) string {
	v, err := el.Attribute(name)
	if err != nil || v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
