package treasury

import (
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store"
	"github.com/boxmeout/coffer/x"
)

// AssetLedger is the fungible asset ledger holding the treasury funds.
// A failed transfer must leave all balances unchanged.
type AssetLedger interface {
	Balance(db coffer.ReadOnlyKVStore, asset, holder coffer.Address) (sdkmath.Int, error)
	Transfer(ctx coffer.Context, db coffer.KVStore, asset, from, to coffer.Address, amount sdkmath.Int) error
}

// Controller implements the treasury operations. Calls are serialized and
// each mutating call either fully applies or leaves the store untouched.
type Controller struct {
	mu      sync.Mutex
	ledger  AssetLedger
	auth    x.Authenticator
	metrics *Metrics
}

// NewController returns a controller moving funds through ledger. The
// authenticator must prove the admin for initialization and distribution.
func NewController(ledger AssetLedger, auth x.Authenticator) *Controller {
	return &Controller{
		ledger: ledger,
		auth:   auth,
	}
}

// WithMetrics makes the controller report pool changes to m.
func (c *Controller) WithMetrics(m *Metrics) *Controller {
	c.metrics = m
	return c
}

// Initialize creates the treasury state with all pools empty. The context
// must carry the admin authorization. The state can be created only once.
func (c *Controller) Initialize(ctx coffer.Context, db coffer.KVStore, admin, asset, factory coffer.Address) ([]coffer.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.atomically(db, func(db coffer.KVStore) ([]coffer.Event, error) {
		if err := validateInit(admin, asset, factory); err != nil {
			return nil, err
		}
		if err := x.RequireAddress(ctx, c.auth, admin, "admin"); err != nil {
			return nil, err
		}
		if old, err := loadState(db); err != nil {
			return nil, err
		} else if old != nil {
			return nil, errors.Wrap(errors.ErrDuplicate, "treasury already initialized")
		}

		s := newState(admin, asset, factory)
		if err := saveState(db, s); err != nil {
			return nil, err
		}

		coffer.GetLogger(ctx).Info("Treasury initialized",
			"admin", admin.String(),
			"asset_contract", asset.String(),
			"factory", factory.String())
		return []coffer.Event{initializedEvent(s)}, nil
	})
}

// DepositFees moves amount from source into the treasury account and
// credits the pool of the named category. The asset ledger enforces that
// source authorized the debit.
func (c *Controller) DepositFees(ctx coffer.Context, db coffer.KVStore, source coffer.Address, category string, amount sdkmath.Int) ([]coffer.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		cat  FeeCategory
		pool sdkmath.Int
	)
	events, err := c.atomically(db, func(db coffer.KVStore) ([]coffer.Event, error) {
		if err := validateFeeAmount(amount); err != nil {
			return nil, err
		}
		var err error
		if cat, err = ParseFeeCategory(category); err != nil {
			return nil, err
		}
		if err := source.Validate(); err != nil {
			return nil, errors.Wrap(err, "source")
		}
		if source.Equals(TreasuryAddress()) {
			return nil, errors.Wrap(errors.ErrInput, "source is the treasury account")
		}
		s, err := mustLoadState(db)
		if err != nil {
			return nil, err
		}

		if err := c.ledger.Transfer(ctx, db, s.AssetContract, source, TreasuryAddress(), amount); err != nil {
			return nil, errors.Wrap(err, "collect fees")
		}

		if pool, err = coffer.AddAmounts(s.Pool(cat), amount); err != nil {
			return nil, errors.Wrapf(err, "%s pool", cat)
		}
		s.setPool(cat, pool)
		if err := saveState(db, s); err != nil {
			return nil, err
		}

		coffer.GetLogger(ctx).Info("Fees deposited",
			"source", source.String(),
			"category", cat.String(),
			"amount", amount.String())
		return []coffer.Event{feeDepositedEvent(amount, cat)}, nil
	})
	if err == nil {
		c.metrics.deposited(cat, pool)
	}
	return events, err
}

// DistributeLeaderboard pays out the leaderboard pool to the recipients
// proportionally to their shares. Amounts are rounded down and the
// remainder stays in the pool. The context must carry the admin
// authorization. Distributing an empty pool does nothing.
func (c *Controller) DistributeLeaderboard(ctx coffer.Context, db coffer.KVStore, rewards []*RewardShare) ([]coffer.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var left sdkmath.Int
	events, err := c.atomically(db, func(db coffer.KVStore) ([]coffer.Event, error) {
		s, err := mustLoadState(db)
		if err != nil {
			return nil, err
		}
		if err := x.RequireAddress(ctx, c.auth, s.Admin, "admin"); err != nil {
			return nil, err
		}
		if err := validateRewardSet(db, rewards); err != nil {
			return nil, err
		}

		total := s.LeaderboardFees
		if total.IsZero() {
			return nil, nil
		}

		payCtx := withTreasury(ctx)
		distributed := sdkmath.ZeroInt()
		for i, r := range rewards {
			amount, err := coffer.MulDivFloor(total, uint64(r.ShareBps), BasisPoints)
			if err != nil {
				return nil, errors.Wrapf(err, "reward %d", i)
			}
			if !amount.IsPositive() {
				continue
			}
			if err := c.ledger.Transfer(payCtx, db, s.AssetContract, TreasuryAddress(), r.Recipient, amount); err != nil {
				return nil, errors.Wrapf(err, "pay reward %d", i)
			}
			distributed = distributed.Add(amount)
		}

		if left, err = coffer.SubAmounts(total, distributed); err != nil {
			return nil, errors.Wrap(err, "leaderboard pool")
		}
		s.LeaderboardFees = left
		if err := saveState(db, s); err != nil {
			return nil, err
		}

		coffer.GetLogger(ctx).Info("Leaderboard distributed",
			"total_fees", total.String(),
			"distributed", distributed.String(),
			"recipients", len(rewards))
		return []coffer.Event{distributedEvent(total, len(rewards))}, nil
	})
	if err == nil && len(events) > 0 {
		c.metrics.distributed(left)
	}
	return events, err
}

// PlatformFees returns the platform pool, zero if not initialized.
func (c *Controller) PlatformFees(db coffer.ReadOnlyKVStore) (sdkmath.Int, error) {
	return c.Fees(db, CategoryPlatform)
}

// LeaderboardFees returns the leaderboard pool, zero if not initialized.
func (c *Controller) LeaderboardFees(db coffer.ReadOnlyKVStore) (sdkmath.Int, error) {
	return c.Fees(db, CategoryLeaderboard)
}

// CreatorFees returns the creator pool, zero if not initialized.
func (c *Controller) CreatorFees(db coffer.ReadOnlyKVStore) (sdkmath.Int, error) {
	return c.Fees(db, CategoryCreator)
}

// Fees returns the pool of the given category, zero if not initialized.
func (c *Controller) Fees(db coffer.ReadOnlyKVStore, category FeeCategory) (sdkmath.Int, error) {
	if _, ok := categoryNames[category]; !ok {
		return sdkmath.Int{}, errors.Wrapf(ErrInvalidCategory, "%d", int(category))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := loadState(db)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if s == nil {
		return sdkmath.ZeroInt(), nil
	}
	return s.Pool(category), nil
}

// State returns the whole treasury record.
func (c *Controller) State(db coffer.ReadOnlyKVStore) (*State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return mustLoadState(db)
}

// atomically runs fn on a cache of db. The cache is written to db only if
// fn succeeds.
func (c *Controller) atomically(db coffer.KVStore, fn func(coffer.KVStore) ([]coffer.Event, error)) ([]coffer.Event, error) {
	cstore, ok := db.(coffer.CacheableKVStore)
	if !ok {
		cstore = store.BTreeCacheable{KVStore: db}
	}
	cache := cstore.CacheWrap()
	events, err := fn(cache)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	return events, nil
}

func validateInit(admin, asset, factory coffer.Address) error {
	if err := admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if err := asset.Validate(); err != nil {
		return errors.Wrap(err, "asset contract")
	}
	if err := factory.Validate(); err != nil {
		return errors.Wrap(err, "factory")
	}
	return nil
}

// validateRewardSet checks the reward set against its stateless rules and
// the configured recipient limit.
func validateRewardSet(db coffer.ReadOnlyKVStore, rewards []*RewardShare) error {
	if err := ValidateRewards(rewards); err != nil {
		return err
	}
	limit, err := loadMaxRecipients(db)
	if err != nil {
		return err
	}
	if limit > 0 && len(rewards) > int(limit) {
		return errors.Wrapf(errors.ErrInput, "%d recipients, at most %d allowed", len(rewards), limit)
	}
	return nil
}
