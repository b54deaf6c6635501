// Package browse defines the page-session capability the extraction
// strategies run against, and implements it with a real browser via go-rod.
// The interfaces exist so extraction logic can be exercised against fakes.
package browse

import (
	"errors"
	"time"
)

// ErrTimeout reports that a navigation or selector wait exceeded its bound.
// Callers use it to tell a slow page apart from a broken one.
var ErrTimeout = errors.New("browse: timed out")

// Element is a handle to a rendered DOM element.
type Element interface {
	// Text returns the element's visible text content.
	Text() (string, error)

	// Attribute returns the named attribute, or nil when it is not set.
	Attribute(name string) (*string, error)

	// Closest returns the nearest ancestor matching selector, or nil when
	// there is none.
	Closest(selector string) (Element, error)

	// First returns the first descendant matching selector, or nil when
	// there is none.
	First(selector string) (Element, error)
}

// Session is a single browser page reused across the targets of a run.
// Sessions are not safe for concurrent use; targets are processed
// sequentially by design.
type Session interface {
	// Navigate loads url and returns once the document's structural
	// content is parsed. It deliberately does not wait for network idle,
	// which can hang on pages with long-polling trackers.
	Navigate(url string, timeout time.Duration) error

	// WaitFor blocks until at least one element matches selector, or the
	// timeout expires with ErrTimeout.
	WaitFor(selector string, timeout time.Duration) error

	// Elements returns all current matches for selector without waiting.
	Elements(selector string) ([]Element, error)
}
