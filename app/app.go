package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// App binds a handler stack to a committed store. Transactions are applied
// one at a time, first to the check cache and then to the deliver cache,
// and become durable on Commit.
type App struct {
	mu sync.Mutex

	logger log.Logger

	// Database state (committed, check, deliver....)
	store *CommitStore

	decoder     TxDecoder
	handler     coffer.Handler
	initializer coffer.Initializer

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext coffer.Context

	// debug disables redaction of panic details in returned errors
	debug bool
}

// NewApp loads the latest state from store and returns an app ready to
// process transactions.
func NewApp(store coffer.CommitKVStore, decoder TxDecoder, handler coffer.Handler, init coffer.Initializer) (*App, error) {
	cs, err := NewCommitStore(store)
	if err != nil {
		return nil, err
	}
	a := &App{
		store:       cs,
		decoder:     decoder,
		handler:     handler,
		initializer: init,
		baseContext: context.Background(),
	}
	a = a.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	if chainID != "" {
		a.chainID = chainID
		a.baseContext = coffer.WithChainID(a.baseContext, chainID)
	}
	return a, nil
}

// WithLogger sets the logger on the App and returns it,
// to make it easy to chain in initialization
//
// also sets baseContext logger
func (a *App) WithLogger(logger log.Logger) *App {
	a.baseContext = coffer.WithLogger(a.baseContext, logger)
	a.logger = logger
	return a
}

// WithDebug controls whether panic details are returned to the caller.
func (a *App) WithDebug(debug bool) *App {
	a.debug = debug
	return a
}

// ChainID returns the current chain id, empty before InitChain.
func (a *App) ChainID() string {
	return a.chainID
}

// DeliverStore returns the current deliver cache.
func (a *App) DeliverStore() coffer.CacheableKVStore {
	return a.store.DeliverStore()
}

// CheckStore returns the current check cache.
func (a *App) CheckStore() coffer.CacheableKVStore {
	return a.store.CheckStore()
}

// InitChain stores the chain id and loads the genesis state. It must be
// called exactly once in the lifetime of the data store.
func (a *App) InitChain(gen Genesis) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != "" {
		return errors.Wrapf(errors.ErrImmutable, "genesis previously loaded for chain %s", a.chainID)
	}

	cache := a.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if a.initializer != nil {
		if err := a.initializer.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return err
	}
	a.store.followDeliver()

	a.chainID = gen.ChainID
	a.baseContext = coffer.WithChainID(a.baseContext, gen.ChainID)
	a.logger.Info("Chain initialized", "chain_id", gen.ChainID, "version", coffer.Version())
	return nil
}

// CheckTx decodes the transaction and runs it against the check cache.
func (a *App) CheckTx(raw []byte) (*coffer.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	tx, err := a.loadTx(raw)
	if err != nil {
		return nil, a.redact(err)
	}
	ctx := coffer.WithLogInfo(a.baseContext,
		"call", "check_tx",
		"path", coffer.GetPath(tx))

	res, err := a.handler.Check(ctx, a.store.CheckStore(), tx)
	return res, a.redact(err)
}

// DeliverTx decodes the transaction and runs it against the deliver cache.
func (a *App) DeliverTx(raw []byte) (*coffer.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	tx, err := a.loadTx(raw)
	if err != nil {
		return nil, a.redact(err)
	}
	ctx := coffer.WithLogInfo(a.baseContext,
		"call", "deliver_tx",
		"path", coffer.GetPath(tx))

	res, err := a.handler.Deliver(ctx, a.store.DeliverStore(), tx)
	return res, a.redact(err)
}

// Commit makes all delivered transactions durable.
func (a *App) Commit() (coffer.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	commitID, err := a.store.Commit()
	if err != nil {
		return commitID, errors.Wrap(err, "commit")
	}
	a.logger.Debug("Commit synced",
		"height", commitID.Version,
		"hash", fmt.Sprintf("%X", commitID.Hash),
	)
	return commitID, nil
}

// loadTx calls the decoder, and capture any panics
func (a *App) loadTx(raw []byte) (tx coffer.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = a.decoder(raw)
	return
}

func (a *App) redact(err error) error {
	if err == nil || a.debug {
		return err
	}
	return errors.Redact(err)
}
