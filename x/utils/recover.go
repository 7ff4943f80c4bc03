package utils

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Recovery stops a panicking handler from taking the node down. The panic
// is logged with the message path and returned as ErrPanic, which the
// app redacts before it leaves the node.
type Recovery struct{}

var _ coffer.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Checker) (res *coffer.CheckResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (res *coffer.DeliverResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recovered must be deferred directly, as recover only works there.
func recovered(ctx coffer.Context, tx coffer.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	path := "(missing)"
	if tx != nil {
		path = coffer.GetPath(tx)
	}
	coffer.GetLogger(ctx).Error("handler panic", "path", path, "panic", r)
	*err = errors.Wrapf(errors.ErrPanic, "%s: %v", path, r)
}
