package app

import (
	"context"
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/coffertest"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &coffertest.Decorator{}
	c2 := &coffertest.Decorator{}
	c3 := &coffertest.Decorator{}
	h := &coffertest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx := context.Background()
	tx := &coffertest.Tx{Msg: &coffertest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(ctx, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failing decorator stops the call before it reaches the rest of
	// the chain
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	stack := ChainDecorators(
		utils.NewRecovery(),
	).WithHandler(coffertest.PanicHandler{Value: "boom"})

	tx := &coffertest.Tx{Msg: &coffertest.Msg{RoutePath: "test/panic"}}
	_, err := stack.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestChainAppendDoesNotShareState(t *testing.T) {
	base := ChainDecorators(&coffertest.Decorator{})
	d1 := &coffertest.Decorator{}
	d2 := &coffertest.Decorator{}

	h1 := base.Chain(d1).WithHandler(&coffertest.Handler{})
	h2 := base.Chain(d2).WithHandler(&coffertest.Handler{})

	var tx coffer.Tx = &coffertest.Tx{Msg: &coffertest.Msg{RoutePath: "test/chain"}}
	_, _ = h1.Check(context.Background(), nil, tx)
	_, _ = h2.Check(context.Background(), nil, tx)

	assert.Equal(t, 1, d1.CallCount())
	assert.Equal(t, 1, d2.CallCount())
}
