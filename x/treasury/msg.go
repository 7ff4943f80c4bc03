package treasury

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

const (
	pathInitMsg                  = "treasury/init"
	pathDepositFeesMsg           = "treasury/deposit_fees"
	pathDistributeLeaderboardMsg = "treasury/distribute_leaderboard"
)

var _ coffer.Msg = (*InitMsg)(nil)

// Path returns the routing path for this message
func (InitMsg) Path() string {
	return pathInitMsg
}

// Validate ensures all addresses are well formed.
func (m *InitMsg) Validate() error {
	return validateInit(m.Admin, m.AssetContract, m.Factory)
}

var _ coffer.Msg = (*DepositFeesMsg)(nil)

// Path returns the routing path for this message
func (DepositFeesMsg) Path() string {
	return pathDepositFeesMsg
}

// Validate ensures the amount is positive and the category known.
func (m *DepositFeesMsg) Validate() error {
	if err := validateFeeAmount(m.Amount); err != nil {
		return err
	}
	if _, err := ParseFeeCategory(m.Category); err != nil {
		return err
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	return nil
}

var _ coffer.Msg = (*DistributeLeaderboardMsg)(nil)

// Path returns the routing path for this message
func (DistributeLeaderboardMsg) Path() string {
	return pathDistributeLeaderboardMsg
}

// Validate ensures the reward set is well formed.
func (m *DistributeLeaderboardMsg) Validate() error {
	return ValidateRewards(m.Rewards)
}
