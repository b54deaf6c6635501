package targets_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/newswatch/targets"
)

// Test helper: create a store backed by a temp database
func createTestStore(t *testing.T) *targets.Store {
	t.Helper()
	store, err := targets.NewStore(filepath.Join(t.TempDir(), "targets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestAdd_AssignsIDAndTimestamp verifies Add fills in server-side fields
func TestAdd_AssignsIDAndTimestamp(t *testing.T) {
	store := createTestStore(t)

	target, err := store.Add("tech", "https://a.com/news", "web", "h2 a")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, target.ID)
	assert.False(t, target.CreatedAt.IsZero())
	assert.Equal(t, "tech", target.Source)
	assert.Equal(t, "h2 a", target.Selector)
}

// TestAdd_DuplicateURL verifies the unique-URL constraint surfaces as the
// sentinel error
func TestAdd_DuplicateURL(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Add("tech", "https://a.com/news", "web", "")
	require.NoError(t, err)

	_, err = store.Add("other", "https://a.com/news", "web", "")
	assert.ErrorIs(t, err, targets.ErrDuplicateURL)
}

// TestAdd_InvalidKind verifies kind validation
func TestAdd_InvalidKind(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Add("tech", "https://a.com/news", "rss", "")
	assert.ErrorIs(t, err, targets.ErrInvalidKind)
}

// TestList_FiltersBySource verifies listing with and without a source name
func TestList_FiltersBySource(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Add("tech", "https://a.com/news", "web", "")
	require.NoError(t, err)
	_, err = store.Add("tech", "https://b.com/news", "auto", "")
	require.NoError(t, err)
	_, err = store.Add("social", "https://twitter.com/user", "social", "")
	require.NoError(t, err)

	all, err := store.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tech, err := store.List("tech")
	require.NoError(t, err)
	require.Len(t, tech, 2)
	assert.Equal(t, "https://a.com/news", tech[0].URL)
	assert.Equal(t, "https://b.com/news", tech[1].URL)
}

// TestGet_RoundTrip verifies stored fields survive a fetch by ID
func TestGet_RoundTrip(t *testing.T) {
	store := createTestStore(t)

	added, err := store.Add("tech", "https://a.com/news", "web", "h2")
	require.NoError(t, err)

	got, err := store.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, added.URL, got.URL)
	assert.Equal(t, added.Kind, got.Kind)
	assert.Equal(t, added.Selector, got.Selector)
}

// TestGet_NotFound verifies the sentinel error for unknown IDs
func TestGet_NotFound(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Get(uuid.New())
	assert.ErrorIs(t, err, targets.ErrTargetNotFound)
}

// TestDelete verifies deletion and the not-found sentinel
func TestDelete(t *testing.T) {
	store := createTestStore(t)

	added, err := store.Add("tech", "https://a.com/news", "web", "")
	require.NoError(t, err)

	require.NoError(t, store.Delete(added.ID))

	_, err = store.Get(added.ID)
	assert.ErrorIs(t, err, targets.ErrTargetNotFound)

	err = store.Delete(added.ID)
	assert.ErrorIs(t, err, targets.ErrTargetNotFound)
}
