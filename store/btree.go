package store

import (
	"bytes"

	"github.com/google/btree"
)

// BTreeCacheable adds a btree based CacheWrap to any KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a cache that can be later written to this store, or
// dropped.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, nil)
}

// MemStore returns an in-memory store for tests. There is no
// persistence: the store is a cache that is never written.
func MemStore() CacheableKVStore {
	return NewBTreeCacheWrap(EmptyKVStore{}, nil)
}

// BTreeCacheWrap holds the latest pending value of every key written
// through it on top of a parent store. Write flushes the pending values
// to the parent in ascending key order, so the parent sees the same
// sequence of writes for the same end state.
type BTreeCacheWrap struct {
	parent  KVStore
	pending *btree.BTree
	free    *btree.FreeList
}

var _ KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap creates a cache over parent. free may be nil, or a
// list shared with related caches to reuse tree nodes.
func NewBTreeCacheWrap(parent KVStore, free *btree.FreeList) *BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return &BTreeCacheWrap{
		parent:  parent,
		pending: btree.NewWithFreeList(2, free),
		free:    free,
	}
}

// CacheWrap layers another cache on top of this one.
func (b *BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// NewBatch returns a batch writing into this cache.
func (b *BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes all pending values to the parent through a single batch
// and empties the cache. The cache is emptied even if the flush fails.
func (b *BTreeCacheWrap) Write() error {
	defer b.Discard()

	batch := b.parent.NewBatch()
	var err error
	b.pending.Ascend(func(it btree.Item) bool {
		err = it.(entry).op().Apply(batch)
		return err == nil
	})
	if err != nil {
		return err
	}
	return batch.Write()
}

// Discard drops all pending values.
func (b *BTreeCacheWrap) Discard() {
	b.pending.Clear(true)
}

// Set records value as pending for key.
func (b *BTreeCacheWrap) Set(key, value []byte) error {
	b.pending.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

// Delete records key as pending removal.
func (b *BTreeCacheWrap) Delete(key []byte) error {
	b.pending.ReplaceOrInsert(entry{key: key, deleted: true})
	return nil
}

// Get returns the pending value of key if any, else the parent's.
func (b *BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := b.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return b.parent.Get(key)
}

// Has reports the pending state of key if any, else the parent's.
func (b *BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := b.lookup(key); ok {
		return !e.deleted, nil
	}
	return b.parent.Has(key)
}

func (b *BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	it := b.pending.Get(entry{key: key})
	if it == nil {
		return entry{}, false
	}
	return it.(entry), true
}

// entry is a pending write ordered by key.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

func (e entry) op() Op {
	if e.deleted {
		return DelOp(e.key)
	}
	return SetOp(e.key, e.value)
}
