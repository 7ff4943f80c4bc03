// Package store holds the key value store implementations backing the
// ledger: a btree cache for atomic handler writes, and in store/iavl the
// persistent versioned tree.
package store

import "github.com/boxmeout/coffer"

// Aliases of the root interfaces, so implementations in this package and
// below can refer to them without the coffer prefix.
type (
	ReadOnlyKVStore  = coffer.ReadOnlyKVStore
	SetDeleter       = coffer.SetDeleter
	KVStore          = coffer.KVStore
	Batch            = coffer.Batch
	CacheableKVStore = coffer.CacheableKVStore
	KVCacheWrap      = coffer.KVCacheWrap
	CommitKVStore    = coffer.CommitKVStore
	CommitID         = coffer.CommitID
)
