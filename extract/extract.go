// Package extract turns a page session into a list of news candidates.
// Two browser-driven strategies share one contract: a selector-driven scan
// for general web pages, and a pinned-post reader for social profiles. A
// third strategy covers web pages over plain HTTP without a browser.
package extract

import (
	"errors"
	"fmt"
	"time"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/news"
)

// ErrNoSelector reports a web target with no explicit selector and no
// domain-table entry. This is a configuration gap, not a scrape failure:
// the target is reported and skipped, never retried.
var ErrNoSelector = errors.New("no selector for target")

// Error is a retryable extraction failure: the page may behave on the next
// attempt. Anything a strategy returns wrapped in Error is fair game for
// the retry budget.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Target is one URL to extract candidates from. Selector is the resolved
// CSS selector for web targets; social targets leave it empty.
type Target struct {
	URL      string
	Selector string
}

// Strategy produces candidates from a page session. An empty result is not
// an error; only conditions worth retrying surface as *Error.
type Strategy interface {
	Extract(session browse.Session, target Target) ([]news.Candidate, error)
}

// Default wait bounds. Navigation gets longer than selector waits because
// a page that loaded but never grew the selector is not going to.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultSelectorTimeout   = 10 * time.Second
)
