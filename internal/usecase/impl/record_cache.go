package impl

import (
	"recipebox/internal/domain/entity"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultRecordCacheSize bounds how many users are mirrored per process.
const defaultRecordCacheSize = 10_000

// RecordCache mirrors the last user record this process wrote for each UID.
// Mutations always read the document store first; the cache only serves
// the profile page after an update and the delete flow when the store is down.
// The least recently used entry is evicted once the cache is full.
type RecordCache struct {
	records *lru.Cache[string, *entity.UserRecord]
}

// NewRecordCache creates an empty cache holding up to defaultRecordCacheSize records.
func NewRecordCache() *RecordCache {
	return newRecordCache(defaultRecordCacheSize)
}

func newRecordCache(size int) *RecordCache {
	// lru.New only fails for a non-positive size.
	records, _ := lru.New[string, *entity.UserRecord](max(size, 1))

	return &RecordCache{records: records}
}

// Get returns a copy of the cached record.
func (c *RecordCache) Get(uid string) (*entity.UserRecord, bool) {
	record, ok := c.records.Get(uid)

	return record.Clone(), ok
}

// Put stores a copy of record.
func (c *RecordCache) Put(record *entity.UserRecord) {
	if record == nil {
		return
	}

	c.records.Add(record.UID, record.Clone())
}

// Remove forgets uid.
func (c *RecordCache) Remove(uid string) {
	c.records.Remove(uid)
}

// Len reports how many records are cached.
func (c *RecordCache) Len() int {
	return c.records.Len()
}
