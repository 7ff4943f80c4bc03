package coffertest

import (
	"context"
	"fmt"

	"github.com/boxmeout/coffer"
)

// Auth authenticates a fixed set of conditions, whatever the context.
// Signer and Signers are merged, Signer is a shortcut for tests that act
// as a single party.
type Auth struct {
	Signer  coffer.Condition
	Signers []coffer.Condition
}

func (a *Auth) GetConditions(coffer.Context) []coffer.Condition {
	var conds []coffer.Condition
	conds = append(conds, a.Signers...)
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx coffer.Context, addr coffer.Address) bool {
	return anyAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in the context under Key,
// so a test can switch the acting party per call with SetConditions.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating exactly the given
// conditions.
func (a *CtxAuth) SetConditions(ctx coffer.Context, conds ...coffer.Condition) coffer.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx coffer.Context) []coffer.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []coffer.Condition:
		return v
	default:
		panic(fmt.Sprintf("context key %q holds %T", a.Key, v))
	}
}

func (a *CtxAuth) HasAddress(ctx coffer.Context, addr coffer.Address) bool {
	return anyAddress(a.GetConditions(ctx), addr)
}

func anyAddress(conds []coffer.Condition, addr coffer.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
