package news

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the persisted record collection: a single file
// holding a JSON array of records. The collection is read once at the
// start of a run and replaced wholesale at most once at the end.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path. The file is not
// touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full record collection. An absent or empty file is an
// empty collection, not an error.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	return records, nil
}

// Save replaces the full record collection. The data is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a torn file.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".newswatch-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
