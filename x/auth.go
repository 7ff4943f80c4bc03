package x

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Authenticator tells which conditions a transaction has fulfilled. Handlers
// take one in their constructor instead of reading signatures themselves, so
// the treasury can be authorized by its own condition next to the signers.
type Authenticator interface {
	GetConditions(coffer.Context) []coffer.Condition
	HasAddress(coffer.Context, coffer.Address) bool
}

// MultiAuth authenticates what any of its members authenticates.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth(nil)

func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth(impls)
}

// GetConditions returns the conditions of all members in order, each one
// once.
func (m MultiAuth) GetConditions(ctx coffer.Context) []coffer.Condition {
	var res []coffer.Condition
	for _, impl := range m {
		for _, c := range impl.GetConditions(ctx) {
			if !containsCondition(res, c) {
				res = append(res, c)
			}
		}
	}
	return res
}

func (m MultiAuth) HasAddress(ctx coffer.Context, addr coffer.Address) bool {
	for _, impl := range m {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// RequireAddress returns ErrUnauthorized unless addr is authenticated.
// role names the party in the error, like "admin" or "sender".
func RequireAddress(ctx coffer.Context, auth Authenticator, addr coffer.Address, role string) error {
	if auth.HasAddress(ctx, addr) {
		return nil
	}
	return errors.Wrapf(errors.ErrUnauthorized, "%s %s did not sign", role, addr)
}

func containsCondition(conds []coffer.Condition, c coffer.Condition) bool {
	for _, have := range conds {
		if have.Equals(c) {
			return true
		}
	}
	return false
}
