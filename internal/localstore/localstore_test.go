package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	assert.NoError(t, err)
	defer store.Close()

	_, ok := store.Get("userId")
	assert.False(t, ok)

	assert.NoError(t, store.Set("userId", "7"))
	value, ok := store.Get("userId")
	assert.True(t, ok)
	assert.Equal(t, "7", value)

	assert.NoError(t, store.Set("userId", "8"))
	value, _ = store.Get("userId")
	assert.Equal(t, "8", value)

	assert.NoError(t, store.Delete("userId"))
	_, ok = store.Get("userId")
	assert.False(t, ok)

	// deleting a missing key is fine
	assert.NoError(t, store.Delete("userId"))
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Set("userId", "42"))
	assert.NoError(t, store.Close())

	reopened, err := Open(dir)
	assert.NoError(t, err)
	defer reopened.Close()

	value, ok := reopened.Get("userId")
	assert.True(t, ok)
	assert.Equal(t, "42", value)
}
