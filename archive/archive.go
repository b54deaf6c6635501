// Package archive relocates aged records from the primary news store into
// a secondary store sharing the same schema. It runs as an independent
// batch job, never during a monitoring run.
package archive

import (
	"fmt"
	"time"

	"github.com/pevans/newswatch/news"
)

// Result reports one archival pass.
type Result struct {
	Moved   int // records that left the primary store
	Kept    int // records remaining in the primary store
	Skipped int // aged records already present in the archive
}

// Run moves records dated before cutoff from the primary store into the
// archive store. Records already present in the archive (by URL) are
// dropped rather than duplicated, so interrupted passes are safe to rerun.
// When nothing qualifies, neither file is written.
func Run(primary, secondary *news.Store, cutoff time.Time) (*Result, error) {
	records, err := primary.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load primary store: %w", err)
	}
	archived, err := secondary.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load archive store: %w", err)
	}

	seen := make(map[string]bool, len(archived))
	for _, r := range archived {
		seen[r.URL] = true
	}

	result := &Result{}
	var keep, moved []news.Record
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			keep = append(keep, r)
			continue
		}
		result.Moved++
		if seen[r.URL] {
			result.Skipped++
			continue
		}
		moved = append(moved, r)
		seen[r.URL] = true
	}
	result.Kept = len(keep)

	if result.Moved == 0 {
		return result, nil
	}

	// Write the archive before shrinking the primary store: a failure
	// between the two writes must never lose records.
	if err := secondary.Save(append(archived, moved...)); err != nil {
		return nil, fmt.Errorf("failed to write archive store: %w", err)
	}
	if err := primary.Save(keep); err != nil {
		return nil, fmt.Errorf("failed to write primary store: %w", err)
	}
	return result, nil
}
