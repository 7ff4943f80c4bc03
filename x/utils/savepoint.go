package utils

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Savepoint runs the wrapped handler on a cache of the store. The cache is
// written back only when the handler succeeds, so a failing transaction
// leaves no partial state behind. Each phase must be enabled explicitly
// with OnCheck or OnDeliver.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ coffer.Decorator = Savepoint{}

// NewSavepoint returns a savepoint enabled for no phase.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Checker) (*coffer.CheckResult, error) {
	var res *coffer.CheckResult
	err := s.isolate(s.onCheck, store, func(db coffer.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (*coffer.DeliverResult, error) {
	var res *coffer.DeliverResult
	err := s.isolate(s.onDeliver, store, func(db coffer.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn on a cache wrap of store when enabled and the store
// supports caching, otherwise on the store itself.
func (Savepoint) isolate(enabled bool, store coffer.KVStore, fn func(coffer.KVStore) error) error {
	cacheable, ok := store.(coffer.CacheableKVStore)
	if !enabled || !ok {
		return fn(store)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write savepoint")
	}
	return nil
}
