package treasury

import (
	"context"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/x"
)

type contextKey int // local to the treasury module

const (
	contextKeyTreasury contextKey = iota
)

// withTreasury is a private method, as only the treasury itself may
// authorize payouts from its account.
func withTreasury(ctx coffer.Context) coffer.Context {
	return context.WithValue(ctx, contextKeyTreasury, TreasuryCondition())
}

// Authenticate grants the treasury condition in contexts created by the
// controller while paying out.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the treasury condition if it was set on this
// context.
func (a Authenticate) GetConditions(ctx coffer.Context) []coffer.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyTreasury).(coffer.Condition)
	if val == nil {
		return nil
	}
	return []coffer.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx coffer.Context, addr coffer.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
