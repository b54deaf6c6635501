package news

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record represents a single persisted news item. Records are created only
// by the merge step at the end of a run and are never mutated afterward;
// the archival job is the only process that relocates them.
type Record struct {
	ID     uuid.UUID `json:"id"`
	Source string    `json:"source"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	URL    string    `json:"url"`
}

// Candidate is an extracted (title, link) pair that has not yet been
// checked against the store. The title is raw scraped text; normalization
// happens during merge.
type Candidate struct {
	Title     string
	Link      string
	SourceURL string
}

// NormalizeTitle collapses internal runs of whitespace to single spaces and
// trims leading and trailing whitespace.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
