package extract

import (
	"net/url"
	"strings"
)

// DefaultSelectors maps a host substring to the selector that finds
// headline elements on that site. Consulted only when a web target has no
// explicit selector.
var DefaultSelectors = map[string]string{
	"news.ycombinator.com": ".titleline > a",
	"techcrunch.com":       "h2.post-block__title",
	"theverge.com":         "h2 a",
	"arstechnica.com":      "h2 a",
	"go.dev":               "p.blogtitle a",
}

// Boilerplate lists strings that structurally match headline selectors but
// are site chrome rather than stories: navigation labels, cookie-consent
// text, error pages. A candidate whose normalized text contains one of
// these is dropped.
var Boilerplate = []string{
	"Skip to content",
	"Skip to main content",
	"Accept all cookies",
	"Cookie settings",
	"We value your privacy",
	"Sign in",
	"Subscribe",
	"404",
	"Page not found",
	"Load more",
}

// SelectorFor resolves the selector for a web target. An explicit selector
// always wins; otherwise the target's host is matched against the table by
// substring. An empty result means a configuration gap for this target.
func SelectorFor(explicit, targetURL string, table map[string]string) string {
	if explicit != "" {
		return explicit
	}
	u, err := url.Parse(targetURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	for domain, selector := range table {
		if strings.Contains(host, domain) {
			return selector
		}
	}
	return ""
}

// isBoilerplate reports whether a normalized title matches the denylist.
func isBoilerplate(title string, denylist []string) bool {
	for _, noise := range denylist {
		if strings.Contains(title, noise) {
			return true
		}
	}
	return false
}
