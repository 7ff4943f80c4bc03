package coffer

// ReadOnlyKVStore reads single records. The ledger never iterates, so
// stores do not need to support range queries. Get returns nil for a
// missing key.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter writes single records. Callers must not modify key or value
// after passing them in.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is what every handler and controller operates on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch queues writes until Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore can stage writes in a cache wrap, to be applied or
// dropped together. Controllers use it to make a whole operation atomic.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch pad over a parent store. Reads see the staged
// writes. Write applies them to the parent, Discard drops them. A cache
// wrap can itself be wrapped.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent versioned root store. Changes are made
// through a CacheWrap and become a new version on Commit.
type CommitKVStore interface {
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap

	// Commit persists the written changes as the next version.
	Commit() (CommitID, error)

	// LoadLatestVersion opens the last complete version on disk. After a
	// crash during a commit this is the version before it.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by height and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
