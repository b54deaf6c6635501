package monitor

import (
	"net/url"
	"strings"
)

// Kind is a target's resolved classification.
type Kind int

const (
	Web Kind = iota
	Social
)

func (k Kind) String() string {
	if k == Social {
		return "social"
	}
	return "web"
}

// socialHosts are the host shapes that classify a target as a social
// profile or post.
var socialHosts = []string{"twitter.com", "x.com"}

// Classify maps a URL onto Web or Social by host shape. Unparseable URLs
// classify as Web; the web strategy surfaces the real failure.
func Classify(rawURL string) Kind {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Web
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range socialHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return Social
		}
	}
	return Web
}
