package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/coffertest"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	ctx := coffer.WithLogger(context.Background(), logger)
	db := store.MemStore()
	tx := &coffertest.Tx{Msg: &coffertest.Msg{RoutePath: "treasury/deposit_fees"}}

	ok := &coffertest.Handler{DeliverResult: coffer.DeliverResult{
		Log:    "all good",
		Events: []coffer.Event{coffer.NewEvent("fee_deposited")},
	}}
	_, err := NewLogging().Deliver(ctx, db, tx, ok)
	assert.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "all good"), out)
	assert.True(t, strings.Contains(out, "path=treasury/deposit_fees"), out)
	assert.True(t, strings.Contains(out, "events=1"), out)

	buf.Reset()
	failing := &coffertest.Handler{CheckErr: errors.ErrUnauthorized.New("admin")}
	_, err = NewLogging().Check(ctx, db, tx, failing)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	out = buf.String()
	assert.True(t, strings.Contains(out, "unauthorized"), out)
	assert.True(t, strings.Contains(out, "code=2"), out)
}
