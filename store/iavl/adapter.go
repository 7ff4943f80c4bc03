package iavl

import (
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of nodes the tree keeps in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	db   dbm.DB
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with leveldb backing,
// stored in the directory under the given name.
func NewCommitStore(path, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", path, name, err)
	}
	return newCommitStore(db), nil
}

// NewMemCommitStore creates a store that keeps every version in memory.
func NewMemCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
		db:   db,
	}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrapf(errors.ErrDatabase, "save version: %s", err)
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load: %s", err)
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap gives us a savepoint to perform actions.
// Written data lands in the working tree and is persisted
// with the next Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// Adapter returns a wrapped version of the tree.
//
// Data written here is stored in the tree, not persisted
// until the next Commit.
func (s *CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: adapter{tree: s.tree}}
}

// Close releases the underlying database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// adapter converts the working tree into a KVStore
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = adapter{}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (a adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (a adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a adapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (a adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}
