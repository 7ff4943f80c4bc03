package treasury

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/gconf"
	"github.com/gogo/protobuf/proto"
)

const (
	// BasisPoints is the share of a reward set paying out the whole pool.
	BasisPoints = 10000

	// _s: is the prefix of singleton records
	stateKey = "_s:treasury"

	// confPkg is the gconf package name of the treasury configuration.
	confPkg = "treasury"
)

// FeeCategory selects one of the treasury pools.
type FeeCategory int

const (
	CategoryPlatform FeeCategory = iota + 1
	CategoryLeaderboard
	CategoryCreator
)

var categoryNames = map[FeeCategory]string{
	CategoryPlatform:    "platform",
	CategoryLeaderboard: "leaderboard",
	CategoryCreator:     "creator",
}

func (c FeeCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseFeeCategory returns the category of the given lowercase name.
func ParseFeeCategory(name string) (FeeCategory, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidCategory, "%q", name)
}

// TreasuryCondition is the condition owning the treasury account on the
// asset ledger.
func TreasuryCondition() coffer.Condition {
	return coffer.NewCondition("treasury", "pool", []byte("fees"))
}

// TreasuryAddress is the account holding all pooled fees.
func TreasuryAddress() coffer.Address {
	return TreasuryCondition().Address()
}

// Validate ensures the state is consistent.
func (s *State) Validate() error {
	if err := s.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if err := s.AssetContract.Validate(); err != nil {
		return errors.Wrap(err, "asset contract")
	}
	if err := s.Factory.Validate(); err != nil {
		return errors.Wrap(err, "factory")
	}
	for c := range categoryNames {
		pool := s.Pool(c)
		if err := coffer.ValidateAmount(pool); err != nil {
			return errors.Wrapf(err, "%s pool", c)
		}
		if pool.IsNegative() {
			return errors.Wrapf(errors.ErrAmount, "negative %s pool", c)
		}
	}
	return nil
}

// Pool returns the balance of the given category pool.
func (s *State) Pool(c FeeCategory) sdkmath.Int {
	switch c {
	case CategoryPlatform:
		return s.PlatformFees
	case CategoryLeaderboard:
		return s.LeaderboardFees
	case CategoryCreator:
		return s.CreatorFees
	}
	return sdkmath.Int{}
}

func (s *State) setPool(c FeeCategory, v sdkmath.Int) {
	switch c {
	case CategoryPlatform:
		s.PlatformFees = v
	case CategoryLeaderboard:
		s.LeaderboardFees = v
	case CategoryCreator:
		s.CreatorFees = v
	}
}

// normalize replaces pools left unset by the decoder with zero.
func (s *State) normalize() {
	for c := range categoryNames {
		if s.Pool(c).IsNil() {
			s.setPool(c, sdkmath.ZeroInt())
		}
	}
}

// newState returns a state with all pools empty.
func newState(admin, asset, factory coffer.Address) *State {
	return &State{
		Admin:           admin,
		AssetContract:   asset,
		Factory:         factory,
		PlatformFees:    sdkmath.ZeroInt(),
		LeaderboardFees: sdkmath.ZeroInt(),
		CreatorFees:     sdkmath.ZeroInt(),
	}
}

// loadState returns the stored state, or nil if the treasury was never
// initialized.
func loadState(db coffer.ReadOnlyKVStore) (*State, error) {
	raw, err := db.Get([]byte(stateKey))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	var s State
	if err := proto.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	s.normalize()
	return &s, nil
}

// mustLoadState is loadState failing with ErrNotInitialized if there is
// no state.
func mustLoadState(db coffer.ReadOnlyKVStore) (*State, error) {
	s, err := loadState(db)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.Wrap(ErrNotInitialized, "no state")
	}
	return s, nil
}

func saveState(db coffer.KVStore, s *State) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "state")
	}
	raw, err := proto.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := db.Set([]byte(stateKey), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Validate ensures the configuration names an owner.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// loadMaxRecipients returns the configured reward set limit, zero when
// there is no configuration.
func loadMaxRecipients(db coffer.ReadOnlyKVStore) (uint32, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrap(err, "configuration")
	}
	return conf.MaxRecipients, nil
}

// ValidateRewards checks a reward set: every recipient is a valid address
// other than the treasury itself and the shares total exactly BasisPoints.
func ValidateRewards(rewards []*RewardShare) error {
	var total uint64
	for i, r := range rewards {
		if r == nil {
			return errors.Wrapf(errors.ErrInput, "reward %d: empty", i)
		}
		if err := r.Recipient.Validate(); err != nil {
			return errors.Wrapf(err, "reward %d recipient", i)
		}
		if r.Recipient.Equals(TreasuryAddress()) {
			return errors.Wrapf(errors.ErrInput, "reward %d recipient is the treasury account", i)
		}
		total += uint64(r.ShareBps)
	}
	if total != BasisPoints {
		return errors.Wrapf(ErrInvalidShareTotal, "got %d, want %d", total, BasisPoints)
	}
	return nil
}

// validateFeeAmount requires a positive amount within the ledger bounds.
func validateFeeAmount(amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errors.Wrapf(ErrInvalidAmount, "must be positive, got %s", amount)
	}
	return coffer.ValidateAmount(amount)
}
