package news_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/newswatch/news"
)

// Test helper: create a sample record for testing
func createTestRecord(title, url string) news.Record {
	return news.Record{
		ID:     uuid.New(),
		Source: "Test Source",
		Title:  title,
		Date:   time.Now().UTC().Truncate(time.Second),
		URL:    url,
	}
}

// TestLoad_AbsentFile verifies that a missing store file is an empty
// collection, not an error
func TestLoad_AbsentFile(t *testing.T) {
	store := news.NewStore(filepath.Join(t.TempDir(), "news.json"))

	records, err := store.Load()
	require.NoError(t, err, "absent file should not be an error")
	assert.Empty(t, records)
}

// TestLoad_EmptyFile verifies that an empty store file is an empty
// collection
func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	records, err := news.NewStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestLoad_MalformedFile verifies that unparseable store contents are an
// error rather than silent data loss
func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := news.NewStore(path).Load()
	assert.Error(t, err)
}

// TestSaveLoad_Roundtrip verifies records survive a save/load cycle intact
// and in order
func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	store := news.NewStore(path)

	records := []news.Record{
		createTestRecord("First Article", "https://example.com/1"),
		createTestRecord("Second Article", "https://example.com/2"),
	}
	require.NoError(t, store.Save(records))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, records[0].ID, loaded[0].ID)
	assert.Equal(t, records[0].Title, loaded[0].Title)
	assert.Equal(t, records[1].URL, loaded[1].URL)
}

// TestSave_ReplacesContents verifies the file is fully replaced, not
// appended to
func TestSave_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	store := news.NewStore(path)

	require.NoError(t, store.Save([]news.Record{
		createTestRecord("Old Article", "https://example.com/old"),
	}))
	require.NoError(t, store.Save([]news.Record{
		createTestRecord("New Article", "https://example.com/new"),
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New Article", loaded[0].Title)
}

// TestSave_NilRecords verifies a nil slice is persisted as an empty array
func TestSave_NilRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	store := news.NewStore(path)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

// TestSave_NoStrayTempFiles verifies the temp-and-rename write leaves no
// leftovers behind
func TestSave_NoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := news.NewStore(filepath.Join(dir, "news.json"))

	require.NoError(t, store.Save([]news.Record{
		createTestRecord("Article", "https://example.com/a"),
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "news.json", entries[0].Name())
}
