package treasury

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
)

// Event types emitted by the treasury.
const (
	EventInitialized            = "treasury_initialized"
	EventFeeDeposited           = "fee_deposited"
	EventLeaderboardDistributed = "leaderboard_distributed"
)

func initializedEvent(s *State) coffer.Event {
	return coffer.NewEvent(EventInitialized,
		"admin", s.Admin.String(),
		"asset_contract", s.AssetContract.String(),
		"factory", s.Factory.String())
}

func feeDepositedEvent(amount sdkmath.Int, category FeeCategory) coffer.Event {
	return coffer.NewEvent(EventFeeDeposited,
		"amount", amount.String(),
		"category", category.String())
}

func distributedEvent(total sdkmath.Int, recipients int) coffer.Event {
	return coffer.NewEvent(EventLeaderboardDistributed,
		"total_fees", total.String(),
		"recipient_count", strconv.Itoa(recipients))
}
