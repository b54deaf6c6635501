package extract_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/extract"
)

func newWebStrategy() *extract.WebStrategy {
	return extract.NewWebStrategy(zerolog.Nop())
}

// TestWebExtract_OwnHref verifies the element's own href is used when
// present
func TestWebExtract_OwnHref(t *testing.T) {
	session := &fakeSession{
		elements: map[string][]*fakeElement{
			"h2 a": {
				{text: "First Story", attrs: map[string]string{"href": "/story/1"}},
				{text: "Second Story", attrs: map[string]string{"href": "https://b.com/2"}},
			},
		},
	}

	candidates, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2 a",
	})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "First Story", candidates[0].Title)
	assert.Equal(t, "https://a.com/story/1", candidates[0].Link)
	assert.Equal(t, "https://b.com/2", candidates[1].Link)
	assert.Equal(t, "https://a.com/news", candidates[0].SourceURL)
	assert.Equal(t, []string{"https://a.com/news"}, session.navigated)
	assert.Equal(t, []string{"h2 a"}, session.waited)
}

// TestWebExtract_AncestorAndDescendantAnchors verifies the link lookup
// order: own href, then ancestor anchor, then descendant anchor
func TestWebExtract_AncestorAndDescendantAnchors(t *testing.T) {
	session := &fakeSession{
		elements: map[string][]*fakeElement{
			"h2": {
				{
					text: "Wrapped Story",
					closest: map[string]*fakeElement{
						"a": {attrs: map[string]string{"href": "/wrapped"}},
					},
				},
				{
					text: "Containing Story",
					children: map[string][]*fakeElement{
						"a": {{attrs: map[string]string{"href": "/contained"}}},
					},
				},
			},
		},
	}

	candidates, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "https://a.com/wrapped", candidates[0].Link)
	assert.Equal(t, "https://a.com/contained", candidates[1].Link)
}

// TestWebExtract_FallbackLink verifies elements with no discoverable href
// get the synthesized key
func TestWebExtract_FallbackLink(t *testing.T) {
	session := &fakeSession{
		elements: map[string][]*fakeElement{
			"h2": {{text: "Orphan Story"}},
		},
	}

	candidates, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://a.com/news#orphan-story", candidates[0].Link)
}

// TestWebExtract_BoilerplateFiltered verifies denylist entries never become
// candidates
func TestWebExtract_BoilerplateFiltered(t *testing.T) {
	session := &fakeSession{
		elements: map[string][]*fakeElement{
			"h2": {
				{text: "Accept all cookies"},
				{text: "Real Story", attrs: map[string]string{"href": "/real"}},
				{text: "404"},
				{text: "  \n "},
			},
		},
	}

	candidates, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Real Story", candidates[0].Title)
}

// TestWebExtract_MissingSelector verifies an empty selector is a
// configuration gap, not a retryable failure
func TestWebExtract_MissingSelector(t *testing.T) {
	session := &fakeSession{}

	_, err := newWebStrategy().Extract(session, extract.Target{URL: "https://a.com"})
	assert.ErrorIs(t, err, extract.ErrNoSelector)
	assert.Empty(t, session.navigated, "no navigation should happen without a selector")
}

// TestWebExtract_NavigationTimeout verifies navigation failures surface as
// retryable extraction errors
func TestWebExtract_NavigationTimeout(t *testing.T) {
	session := &fakeSession{navErr: browse.ErrTimeout}

	_, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	var xerr *extract.Error
	require.ErrorAs(t, err, &xerr)
	assert.ErrorIs(t, err, browse.ErrTimeout)
}

// TestWebExtract_SelectorNeverAppears verifies a selector wait timeout is a
// retryable extraction error
func TestWebExtract_SelectorNeverAppears(t *testing.T) {
	session := &fakeSession{
		waitErrs: map[string]error{"h2": browse.ErrTimeout},
	}

	_, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	var xerr *extract.Error
	require.ErrorAs(t, err, &xerr)
}

// TestWebExtract_EmptyPage verifies zero matches is an empty result, not an
// error
func TestWebExtract_EmptyPage(t *testing.T) {
	session := &fakeSession{}

	candidates, err := newWebStrategy().Extract(session, extract.Target{
		URL:      "https://a.com/news",
		Selector: "h2",
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

// TestExtractionError_Unwrap verifies wrapped causes stay reachable
func TestExtractionError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &extract.Error{Reason: "navigation failed", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "navigation failed")
}
