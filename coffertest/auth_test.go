package coffertest

import (
	"context"
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/stretchr/testify/assert"
)

func TestCtxAuth(t *testing.T) {
	a := NewCondition()
	b := NewCondition()
	auth := &CtxAuth{Key: "auth"}

	ctx := context.Background()
	assert.Nil(t, auth.GetConditions(ctx))
	assert.False(t, auth.HasAddress(ctx, a.Address()))

	ctx = auth.SetConditions(ctx, a)
	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.False(t, auth.HasAddress(ctx, b.Address()))
}

func TestAuth(t *testing.T) {
	a := NewCondition()
	b := NewCondition()
	auth := &Auth{Signer: a, Signers: []coffer.Condition{b}}
	assert.True(t, auth.HasAddress(nil, a.Address()))
	assert.True(t, auth.HasAddress(nil, b.Address()))
	assert.Len(t, auth.GetConditions(nil), 2)
}
