package sigs

import (
	"context"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/x"
)

type signersKey struct{}

// Only the decorator may grant signers.
func withSigners(ctx coffer.Context, signers []coffer.Condition) coffer.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// Authenticate exposes the conditions of the keys that signed the current
// transaction.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx coffer.Context) []coffer.Condition {
	signers, _ := ctx.Value(signersKey{}).([]coffer.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx coffer.Context, addr coffer.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
