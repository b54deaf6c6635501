package news

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MergeResult holds the outcome of deduplicating one run's candidates
// against the existing collection.
type MergeResult struct {
	Admitted []Record
	Rejected int
}

// Merge decides admit or reject for each candidate, in arrival order,
// against both the existing collection and the candidates admitted earlier
// in the same run. A candidate is a duplicate when its normalized title
// matches an existing title case-insensitively, or its link matches an
// existing URL exactly. Admitted candidates immediately join the working
// set, so two targets surfacing the same story in one run admit it once.
//
// The clock and ID generator are injected so the function stays
// deterministic under test.
func Merge(existing []Record, candidates []Candidate, source string, now func() time.Time, newID func() uuid.UUID) MergeResult {
	seenTitles := make(map[string]bool, len(existing))
	seenURLs := make(map[string]bool, len(existing))
	for _, r := range existing {
		seenTitles[strings.ToLower(r.Title)] = true
		seenURLs[r.URL] = true
	}

	var result MergeResult
	for _, c := range candidates {
		title := NormalizeTitle(c.Title)
		if title == "" {
			result.Rejected++
			continue
		}
		key := strings.ToLower(title)
		if seenTitles[key] || seenURLs[c.Link] {
			result.Rejected++
			continue
		}

		result.Admitted = append(result.Admitted, Record{
			ID:     newID(),
			Source: source,
			Title:  title,
			Date:   now().UTC(),
			URL:    c.Link,
		})
		seenTitles[key] = true
		seenURLs[c.Link] = true
	}
	return result
}
