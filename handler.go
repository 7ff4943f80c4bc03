package coffer

import (
	"encoding/json"

	"github.com/boxmeout/coffer/errors"
)

// Handler processes the messages of one module. Check validates a
// transaction against the current state for the mempool, Deliver executes
// it as part of a block.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around a handler and may change the context or the store
// it sees, or stop the transaction before it gets there. Signature checks,
// savepoints and logging are decorators.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the app_state of the genesis file, one raw JSON entry per
// module.
type Options map[string]json.RawMessage

// ReadOptions decodes the entry under key into obj. A missing entry
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %s: %s", key, err)
	}
	return nil
}

// Initializer sets up the state of a module from the genesis file.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs inits in order and stops at the first failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return MultiInitializer(inits)
}

type MultiInitializer []Initializer

var _ Initializer = MultiInitializer(nil)

func (m MultiInitializer) FromGenesis(opts Options, db KVStore) error {
	for _, init := range m {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
