package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCache_ReturnsCopies(t *testing.T) {
	cache := NewRecordCache()
	record := cachedRecord("")
	cache.Put(record)

	record.DisplayName = "changed by caller"
	got, ok := cache.Get("uid-1")
	require.True(t, ok)
	assert.Equal(t, "Ann", got.DisplayName)

	got.DisplayName = "changed again"
	again, _ := cache.Get("uid-1")
	assert.Equal(t, "Ann", again.DisplayName)
}

func TestRecordCache_Remove(t *testing.T) {
	cache := NewRecordCache()
	cache.Put(cachedRecord(storedPhoto))

	cache.Remove("uid-1")

	_, ok := cache.Get("uid-1")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestRecordCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newRecordCache(2)
	for _, uid := range []string{"uid-1", "uid-2"} {
		record := cachedRecord("")
		record.UID = uid
		cache.Put(record)
	}

	_, ok := cache.Get("uid-1")
	require.True(t, ok)

	third := cachedRecord("")
	third.UID = "uid-3"
	cache.Put(third)

	assert.Equal(t, 2, cache.Len())
	_, ok = cache.Get("uid-2")
	assert.False(t, ok, "least recently used record is evicted")
	_, ok = cache.Get("uid-1")
	assert.True(t, ok)
	_, ok = cache.Get("uid-3")
	assert.True(t, ok)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Ann", sanitizeName("  <b>Ann</b> "))
	assert.Equal(t, "Tom & Jerry", sanitizeName("Tom & Jerry"))
	assert.Equal(t, "", sanitizeName("<script>alert(1)</script>"))
	assert.Equal(t, "O'Brien", sanitizeName("O'Brien"))
}
