package extract

import (
	"net/url"
	"strings"
)

// fallbackSlugMax bounds the synthesized key fragment.
const fallbackSlugMax = 50

// ResolveLink turns a raw href found on pageURL into its absolute form,
// anchored at pageURL. When no usable href exists it synthesizes a
// deterministic key from the candidate's title so deduplication still
// works for link-less items: the same title on the same page always yields
// the same link. Never fails; malformed hrefs fall through to the
// synthesized form.
func ResolveLink(pageURL, rawHref, title string) string {
	rawHref = strings.TrimSpace(rawHref)
	base, baseErr := url.Parse(pageURL)
	if rawHref != "" && baseErr == nil {
		if ref, err := url.Parse(rawHref); err == nil {
			abs := base.ResolveReference(ref)
			if abs.Scheme == "http" || abs.Scheme == "https" {
				return abs.String()
			}
		}
	}
	return pageURL + "#" + slug(title)
}

// slug lower-cases s and collapses runs of non-alphanumeric characters
// into single hyphens, capped at fallbackSlugMax characters.
func slug(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if b.Len() >= fallbackSlugMax {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}
