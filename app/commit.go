package app

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// CommitStore keeps two cache wraps over the committed state. Deliver
// writes accumulate in one until the block is committed. Check runs on
// the other, which is dropped on every commit so mempool checks restart
// from the new state.
type CommitStore struct {
	committed coffer.CommitKVStore
	deliver   coffer.KVCacheWrap
	check     coffer.KVCacheWrap
}

// NewCommitStore opens the latest version of store.
func NewCommitStore(store coffer.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// followDeliver restarts the check cache on top of the deliver state, so
// checks see what genesis wrote before the first commit.
func (cs *CommitStore) followDeliver() {
	cs.check.Discard()
	cs.check = cs.deliver.CacheWrap()
}

// CommitInfo returns the last committed version.
func (cs *CommitStore) CommitInfo() (coffer.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists everything delivered since the last commit as a new
// version.
func (cs *CommitStore) Commit() (coffer.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return coffer.CommitID{}, errors.Wrap(err, "flush deliver state")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() coffer.CacheableKVStore   { return cs.check }
func (cs *CommitStore) DeliverStore() coffer.CacheableKVStore { return cs.deliver }

// chainIDKey lives outside every module prefix.
var chainIDKey = []byte("_app:chain_id")

func loadChainID(db coffer.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(raw), nil
}

// saveChainID records the chain id at genesis. It can be set only once.
func saveChainID(db coffer.KVStore, chainID string) error {
	if !coffer.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch set, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case set:
		return errors.Wrap(errors.ErrImmutable, "chain id is set at genesis only")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
