package extract

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/news"
)

// Post container markup on the social platform. The platform is slow and
// intermittently hostile to automation, so every wait is bounded and
// non-timeout failures yield no candidates instead of failing the target.
const (
	postSelector      = `article[data-testid="tweet"]`
	pinnedSelector    = `div[data-testid="socialContext"]`
	postTextSelector  = `div[data-testid="tweetText"]`
	permalinkSelector = `a[href*="/status/"]`
)

// pinnedMarker is the accessible label text that flags a pinned post.
const pinnedMarker = "Pinned"

// SocialStrategy extracts the pinned post from a profile page, falling
// back to the first post in document order when nothing is pinned.
type SocialStrategy struct {
	NavigationTimeout time.Duration
	PostTimeout       time.Duration
	Logger            zerolog.Logger
}

// NewSocialStrategy creates a social strategy with default wait bounds.
func NewSocialStrategy(logger zerolog.Logger) *SocialStrategy {
	return &SocialStrategy{
		NavigationTimeout: DefaultNavigationTimeout,
		PostTimeout:       15 * time.Second,
		Logger:            logger,
	}
}

// Extract yields at most one candidate: the pinned or most recent post.
// Timeouts locating the post container are retryable; anything else is
// logged and the target yields nothing, since blocks on this platform do
// not clear within a retry budget.
func (s *SocialStrategy) Extract(session browse.Session, target Target) ([]news.Candidate, error) {
	if err := session.Navigate(target.URL, s.NavigationTimeout); err != nil {
		if errors.Is(err, browse.ErrTimeout) {
			return nil, &Error{Reason: "navigation timed out", Err: err}
		}
		s.Logger.Warn().Str("url", target.URL).Err(err).Msg("social navigation failed")
		return nil, nil
	}
	if err := session.WaitFor(postSelector, s.PostTimeout); err != nil {
		if errors.Is(err, browse.ErrTimeout) {
			return nil, &Error{Reason: "no post container", Err: err}
		}
		s.Logger.Warn().Str("url", target.URL).Err(err).Msg("social extraction blocked")
		return nil, nil
	}

	posts, err := session.Elements(postSelector)
	if err != nil || len(posts) == 0 {
		s.Logger.Warn().Str("url", target.URL).Msg("post container vanished after wait")
		return nil, nil
	}

	post := pickPost(posts)
	title := postText(post)
	if title == "" {
		return nil, nil
	}

	link := target.URL
	if anchor, err := post.First(permalinkSelector); err == nil && anchor != nil {
		if href := attr(anchor, "href"); href != "" {
			link = ResolveLink(target.URL, href, title)
		}
	}

	return []news.Candidate{{Title: title, Link: link, SourceURL: target.URL}}, nil
}

// pickPost prefers the post carrying the pinned marker; otherwise the
// first post in document order, read as "most recent".
func pickPost(posts []browse.Element) browse.Element {
	for _, post := range posts {
		marker, err := post.First(pinnedSelector)
		if err != nil || marker == nil {
			continue
		}
		text, err := marker.Text()
		if err == nil && strings.Contains(text, pinnedMarker) {
			return post
		}
	}
	return posts[0]
}

// postText reads the post's text body, falling back to the whole
// container's text when the dedicated text node is missing.
func postText(post browse.Element) string {
	if body, err := post.First(postTextSelector); err == nil && body != nil {
		if text, err := body.Text(); err == nil {
			if title := news.NormalizeTitle(text); title != "" {
				return title
			}
		}
	}
	text, err := post.Text()
	if err != nil {
		return ""
	}
	return news.NormalizeTitle(text)
}
